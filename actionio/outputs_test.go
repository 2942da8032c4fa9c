package actionio_test

import (
	"bytes"
	"strings"

	"github.com/terraform-ci/terraform-action/actionio"
	"github.com/terraform-ci/terraform-action/models"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("WriteOutputs", func() {

	write := func(result models.Result) []string {
		buf := &bytes.Buffer{}
		Expect(actionio.WriteOutputs(buf, result)).To(Succeed())
		return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	}

	It("always reports whether changes were detected", func() {
		lines := write(models.Result{})

		Expect(lines).To(Equal([]string{"::set-output name=changes-detected::false"}))
	})

	It("reports the workspace when one was selected", func() {
		lines := write(models.Result{Workspace: "staging", ChangesDetected: true})

		Expect(lines).To(Equal([]string{
			"::set-output name=workspace::staging",
			"::set-output name=changes-detected::true",
		}))
	})

	It("emits outputs in a stable order", func() {
		lines := write(models.Result{
			Workspace: "default",
			Outputs: map[string]interface{}{
				"vpc_id":   "vpc-123",
				"endpoint": "https://example.com",
			},
		})

		Expect(lines).To(Equal([]string{
			"::set-output name=workspace::default",
			"::set-output name=changes-detected::false",
			"::set-output name=endpoint::https://example.com",
			"::set-output name=vpc_id::vpc-123",
		}))
	})

	It("JSON-encodes non-string outputs", func() {
		lines := write(models.Result{
			Workspace: "default",
			Outputs: map[string]interface{}{
				"subnet_ids": []interface{}{"subnet-1", "subnet-2"},
				"count":      float64(3),
			},
		})

		Expect(lines).To(ContainElement(`::set-output name=count::3`))
		Expect(lines).To(ContainElement(`::set-output name=subnet_ids::["subnet-1","subnet-2"]`))
	})

	It("leaves HTML-significant characters in JSON values untouched", func() {
		lines := write(models.Result{
			Workspace: "default",
			Outputs: map[string]interface{}{
				"query": []interface{}{"a&b", "<c>"},
			},
		})

		Expect(lines).To(ContainElement(`::set-output name=query::["a&b","<c>"]`))
	})

	It("escapes percent signs and line breaks in output data", func() {
		lines := write(models.Result{
			Workspace: "default",
			Outputs: map[string]interface{}{
				"motd": "100% done\r\nnext line",
			},
		})

		Expect(lines).To(ContainElement("::set-output name=motd::100%25 done%0D%0Anext line"))
	})

	It("emits the terraform version before the provider versions", func() {
		lines := write(models.Result{
			Versions: map[string]string{
				"terraform": "0.12.28",
				"random":    "2.3.1",
				"acme":      "1.5.0",
			},
		})

		Expect(lines).To(Equal([]string{
			"::set-output name=changes-detected::false",
			"::set-output name=terraform::0.12.28",
			"::set-output name=acme::1.5.0",
			"::set-output name=random::2.3.1",
		}))
	})
})
