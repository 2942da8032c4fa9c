package terraform

import (
	"io/ioutil"
	"os"
	"os/exec"
	"time"

	"github.com/terraform-ci/terraform-action/models"
	"github.com/terraform-ci/terraform-action/runner"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client args", func() {

	newClient := func(model models.Request) client {
		return client{
			model:           model,
			logWriter:       GinkgoWriter,
			changesExitCode: defaultChangesExitCode,
		}
	}

	Describe("initArgs", func() {

		It("never prompts and enables the backend", func() {
			c := newClient(models.Request{Path: "terraform/"})

			args := c.initArgs(true)

			Expect(args).To(ContainElement("-input=false"))
			Expect(args).To(ContainElement("-backend=true"))
		})

		It("disables the backend for stateless commands", func() {
			c := newClient(models.Request{Path: "terraform/"})

			Expect(c.initArgs(false)).To(ContainElement("-backend=false"))
		})

		It("forwards backend config as key=value pairs", func() {
			c := newClient(models.Request{
				Path: "terraform/",
				BackendConfig: map[string]interface{}{
					"bucket": "states",
				},
			})

			Expect(c.initArgs(true)).To(ContainElement("-backend-config=bucket=states"))
		})

		It("forwards the plugin dir when set", func() {
			c := newClient(models.Request{Path: "terraform/", PluginDir: "/opt/plugins"})

			Expect(c.initArgs(true)).To(ContainElement("-plugin-dir=/opt/plugins"))
		})
	})

	Describe("planArgs", func() {

		It("requests the detailed exit code convention", func() {
			c := newClient(models.Request{Path: "terraform/"})

			args := c.planArgs("", "/tmp/vars.tfvars.json")

			Expect(args[0]).To(Equal("plan"))
			Expect(args).To(ContainElement("-detailed-exitcode"))
			Expect(args).To(ContainElement("-input=false"))
			Expect(args).To(ContainElement("-var-file=/tmp/vars.tfvars.json"))
			Expect(args).ToNot(ContainElement(HavePrefix("-out=")))
		})

		It("scopes nothing when no targets are given", func() {
			c := newClient(models.Request{Path: "terraform/"})

			args := c.planArgs("", "/tmp/vars.tfvars.json")

			Expect(args).ToNot(ContainElement(HavePrefix("-target=")))
		})

		It("writes the plan artifact when given an output path", func() {
			c := newClient(models.Request{Path: "terraform/"})

			args := c.planArgs("/tmp/staging.tfplan", "/tmp/vars.tfvars.json")

			Expect(args).To(ContainElement("-out=/tmp/staging.tfplan"))
		})

		It("scopes the plan to each target in declared order", func() {
			c := newClient(models.Request{
				Path:    "terraform/",
				Targets: []string{"aws_instance.web", "module.db"},
			})

			args := c.planArgs("", "/tmp/vars.tfvars.json")

			Expect(args[len(args)-1]).To(Equal("-target=module.db"))
			web := indexOf(args, "-target=aws_instance.web")
			db := indexOf(args, "-target=module.db")
			Expect(web).To(BeNumerically(">", -1))
			Expect(web).To(BeNumerically("<", db))
		})
	})

	Describe("applyArgs", func() {

		It("auto-approves the unattended apply", func() {
			c := newClient(models.Request{Path: "terraform/", AutoApprove: true})

			args := c.applyArgs("/tmp/vars.tfvars.json")

			Expect(args[0]).To(Equal("apply"))
			Expect(args).To(ContainElement("-auto-approve"))
			Expect(args).To(ContainElement("-input=false"))
			Expect(args).ToNot(ContainElement(HavePrefix("-target=")))
		})

		It("forwards targets", func() {
			c := newClient(models.Request{
				Path:    "terraform/",
				Targets: []string{"aws_instance.web"},
			})

			Expect(c.applyArgs("/tmp/vars.tfvars.json")).To(ContainElement("-target=aws_instance.web"))
		})
	})

	Describe("destroyArgs", func() {

		It("auto-approves the unattended destroy", func() {
			c := newClient(models.Request{Path: "terraform/", AutoApprove: true})

			args := c.destroyArgs("/tmp/vars.tfvars.json")

			Expect(args[0]).To(Equal("destroy"))
			Expect(args).To(ContainElement("-auto-approve"))
			Expect(args).ToNot(ContainElement(HavePrefix("-target=")))
		})
	})

	Describe("writeVarFile", func() {

		It("marshals variables into a JSON tfvars file", func() {
			c := newClient(models.Request{
				Path: "terraform/",
				Vars: map[string]interface{}{
					"env":   "staging",
					"count": 3,
				},
			})

			varFile, err := c.writeVarFile()
			Expect(err).ToNot(HaveOccurred())
			defer os.RemoveAll(varFile)

			Expect(varFile).To(HaveSuffix(".tfvars.json"))
			contents, err := ioutil.ReadFile(varFile)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(contents)).To(MatchJSON(`{"env":"staging","count":3}`))
		})
	})

	Describe("translateError", func() {

		It("maps a timeout onto TimeoutError", func() {
			c := newClient(models.Request{Path: "terraform/", Timeout: 5 * time.Second})

			err := c.translateError(runner.ErrTimedOut, nil)

			Expect(err).To(Equal(TimeoutError{Duration: 5 * time.Second}))
		})

		It("maps a non-zero exit onto ExecutionError with captured stderr", func() {
			c := newClient(models.Request{Path: "terraform/"})
			exitErr := exec.Command("sh", "-c", "exit 3").Run()
			Expect(exitErr).To(HaveOccurred())

			err := c.translateError(exitErr, []byte("something broke"))

			execErr, ok := err.(ExecutionError)
			Expect(ok).To(BeTrue())
			Expect(execErr.ExitCode).To(Equal(3))
			Expect(execErr.Stderr).To(Equal("something broke"))
		})

		It("passes nil through", func() {
			c := newClient(models.Request{Path: "terraform/"})

			Expect(c.translateError(nil, nil)).To(BeNil())
		})
	})
})

var _ = Describe("ParseVersions", func() {

	It("extracts the CLI version and each provider version", func() {
		raw := "Terraform v0.12.28\n+ provider.acme v1.5.0\n+ provider.random v2.3.1"

		versions, err := ParseVersions(raw)
		Expect(err).ToNot(HaveOccurred())

		Expect(versions).To(Equal(map[string]string{
			"terraform": "0.12.28",
			"acme":      "1.5.0",
			"random":    "2.3.1",
		}))
	})

	It("works without any providers installed", func() {
		versions, err := ParseVersions("Terraform v1.5.7")
		Expect(err).ToNot(HaveOccurred())

		Expect(versions).To(Equal(map[string]string{"terraform": "1.5.7"}))
	})

	It("fails with a parse error on unrecognized output", func() {
		_, err := ParseVersions("terraform: command not found")

		_, ok := err.(ParseError)
		Expect(ok).To(BeTrue())
	})
})

func indexOf(haystack []string, needle string) int {
	for i, value := range haystack {
		if value == needle {
			return i
		}
	}
	return -1
}
