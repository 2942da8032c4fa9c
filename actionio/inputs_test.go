package actionio_test

import (
	"os"
	"strings"
	"time"

	"github.com/terraform-ci/terraform-action/actionio"
	"github.com/terraform-ci/terraform-action/models"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadRequest", func() {

	var setInputs []string

	setInput := func(name string, value string) {
		key := "INPUT_" + strings.ToUpper(name)
		Expect(os.Setenv(key, value)).To(Succeed())
		setInputs = append(setInputs, key)
	}

	BeforeEach(func() {
		setInputs = nil
	})

	AfterEach(func() {
		for _, key := range setInputs {
			_ = os.Unsetenv(key)
		}
	})

	It("defaults to a plan of the default workspace", func() {
		setInput("path", "terraform/")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.Mode).To(Equal(models.ModePlan))
		Expect(req.Path).To(Equal("terraform/"))
		Expect(req.Workspace).To(Equal("default"))
		Expect(req.AutoApprove).To(BeFalse())
	})

	It("reads the declared inputs", func() {
		setInput("mode", "apply")
		setInput("path", "terraform/")
		setInput("workspace", "staging")
		setInput("auto_approve", "true")
		setInput("backend_type", "s3")
		setInput("plugin_dir", "/opt/plugins")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.Mode).To(Equal(models.ModeApply))
		Expect(req.Workspace).To(Equal("staging"))
		Expect(req.AutoApprove).To(BeTrue())
		Expect(req.BackendType).To(Equal("s3"))
		Expect(req.PluginDir).To(Equal("/opt/plugins"))
	})

	It("reads the workspace lifecycle inputs", func() {
		setInput("mode", "new-workspace")
		setInput("path", "terraform/")
		setInput("strict_new", "true")
		setInput("generate_random_workspace", "true")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.StrictNew).To(BeTrue())
		Expect(req.GenerateRandomWorkspace).To(BeTrue())
	})

	It("accepts comma and newline separated lists", func() {
		setInput("path", "terraform/")
		setInput("target", "aws_instance.web, module.db")
		setInput("var_file", "common.yml\nstaging.yml\n")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.Targets).To(Equal([]string{"aws_instance.web", "module.db"}))
		Expect(req.VarFiles).To(Equal([]string{"common.yml", "staging.yml"}))
	})

	It("parses the variables input as a YAML map", func() {
		setInput("path", "terraform/")
		setInput("variables", "env: staging\ncount: 3\n")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.Vars).To(HaveKeyWithValue("env", "staging"))
		Expect(req.Vars).To(HaveKeyWithValue("count", float64(3)))
	})

	It("fails on a variables input that is not a map", func() {
		setInput("path", "terraform/")
		setInput("variables", "- just\n- a\n- list\n")

		_, err := actionio.LoadRequest()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("variables"))
	})

	It("parses backend_config as a YAML map", func() {
		setInput("path", "terraform/")
		setInput("backend_config", "bucket: states\nregion: us-east-1\n")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.BackendConfig).To(HaveKeyWithValue("bucket", "states"))
		Expect(req.BackendConfig).To(HaveKeyWithValue("region", "us-east-1"))
	})

	It("parses the timeout as seconds", func() {
		setInput("path", "terraform/")
		setInput("timeout", "300")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.Timeout).To(Equal(5 * time.Minute))
	})

	It("fails on a non-numeric timeout", func() {
		setInput("path", "terraform/")
		setInput("timeout", "5m")

		_, err := actionio.LoadRequest()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("timeout"))
	})

	It("fails on a boolean input it cannot parse", func() {
		setInput("path", "terraform/")
		setInput("auto_approve", "yes please")

		_, err := actionio.LoadRequest()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("auto_approve"))
	})

	It("builds the plan storage model when a bucket is given", func() {
		setInput("path", "terraform/")
		setInput("plan_bucket", "plans")
		setInput("plan_bucket_path", "ci/")
		setInput("aws_access_key_id", "AKIA123")
		setInput("aws_secret_access_key", "secret")
		setInput("aws_region", "eu-west-1")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.PlanStorage.IsZero()).To(BeFalse())
		Expect(req.PlanStorage.Bucket).To(Equal("plans"))
		Expect(req.PlanStorage.BucketPath).To(Equal("ci/"))
		Expect(req.PlanStorage.RegionName).To(Equal("eu-west-1"))
	})

	It("leaves plan storage zero without a bucket", func() {
		setInput("path", "terraform/")

		req, err := actionio.LoadRequest()
		Expect(err).ToNot(HaveOccurred())

		Expect(req.PlanStorage.IsZero()).To(BeTrue())
	})
})
