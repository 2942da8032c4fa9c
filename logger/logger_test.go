package logger_test

import (
	"bytes"

	"github.com/terraform-ci/terraform-action/logger"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {

	var (
		sink *bytes.Buffer
		log  logger.Logger
	)

	BeforeEach(func() {
		sink = &bytes.Buffer{}
		log = logger.Logger{Sink: sink}
	})

	It("colors each level distinctly", func() {
		log.Info("planning")
		log.Success("applied")
		log.Warn("changes pending")
		log.Error("drift detected")

		Expect(sink.String()).To(Equal(
			"\033[34mplanning\033[0m\n" +
				"\033[32mapplied\033[0m\n" +
				"\033[33mchanges pending\033[0m\n" +
				"\033[31mdrift detected\033[0m\n"))
	})

	It("banners the phase it is in", func() {
		log.InfoSection("Terraform Plan")
		log.Info("no changes")
		log.EndSection()

		Expect(sink.String()).To(ContainSubstring(">>> Terraform Plan"))
		Expect(sink.String()).To(ContainSubstring(">>> end Terraform Plan"))
	})

	It("nests sections and closes the innermost first", func() {
		log.WarnSection("Terraform Destroy")
		log.InfoSection("Workspace Select")
		log.EndSection()
		log.EndSection()

		lines := bytes.Split(bytes.TrimSuffix(sink.Bytes(), []byte("\n")), []byte("\n"))
		Expect(lines).To(HaveLen(4))
		Expect(string(lines[2])).To(ContainSubstring("end Workspace Select"))
		Expect(string(lines[3])).To(ContainSubstring("end Terraform Destroy"))
	})

	It("tolerates a stray EndSection", func() {
		log.EndSection()

		Expect(sink.String()).To(BeEmpty())
	})
})
