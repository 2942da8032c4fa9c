package models_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/terraform-ci/terraform-action/models"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseVarsFromFiles", func() {

	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = ioutil.TempDir("", "vars-test")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tmpDir)
	})

	writeFile := func(name string, contents string) string {
		path := filepath.Join(tmpDir, name)
		Expect(ioutil.WriteFile(path, []byte(contents), 0600)).To(Succeed())
		return path
	}

	It("folds YAML var files into the request vars", func() {
		varFile := writeFile("vars.yml", "env: staging\ncount: 3\n")

		req := models.Request{
			Mode:     models.ModePlan,
			Path:     "terraform/",
			VarFiles: []string{varFile},
		}

		Expect(req.ParseVarsFromFiles()).To(Succeed())
		Expect(req.Vars).To(HaveKeyWithValue("env", "staging"))
		Expect(req.Vars).To(HaveKeyWithValue("count", 3))
	})

	It("parses .tfvars files as HCL", func() {
		varFile := writeFile("terraform.tfvars", `env = "staging"`)

		req := models.Request{
			Mode:     models.ModePlan,
			Path:     "terraform/",
			VarFiles: []string{varFile},
		}

		Expect(req.ParseVarsFromFiles()).To(Succeed())
		Expect(req.Vars).To(HaveKeyWithValue("env", "staging"))
	})

	It("flattens HCL map blocks into a single map", func() {
		varFile := writeFile("terraform.tfvars", `
tags {
  team = "infra"
}
`)

		req := models.Request{
			Mode:     models.ModePlan,
			Path:     "terraform/",
			VarFiles: []string{varFile},
		}

		Expect(req.ParseVarsFromFiles()).To(Succeed())
		Expect(req.Vars).To(HaveKeyWithValue("tags", map[string]interface{}{"team": "infra"}))
	})

	It("lets later files override earlier ones", func() {
		first := writeFile("first.yml", "env: staging\nregion: us-east-1\n")
		second := writeFile("second.yml", "env: production\n")

		req := models.Request{
			Mode:     models.ModePlan,
			Path:     "terraform/",
			VarFiles: []string{first, second},
		}

		Expect(req.ParseVarsFromFiles()).To(Succeed())
		Expect(req.Vars).To(HaveKeyWithValue("env", "production"))
		Expect(req.Vars).To(HaveKeyWithValue("region", "us-east-1"))
	})

	It("lets explicit vars win over every file", func() {
		varFile := writeFile("vars.yml", "env: staging\n")

		req := models.Request{
			Mode:     models.ModePlan,
			Path:     "terraform/",
			Vars:     map[string]interface{}{"env": "production"},
			VarFiles: []string{varFile},
		}

		Expect(req.ParseVarsFromFiles()).To(Succeed())
		Expect(req.Vars).To(HaveKeyWithValue("env", "production"))
	})

	It("fails on a missing file", func() {
		req := models.Request{
			Mode:     models.ModePlan,
			Path:     "terraform/",
			VarFiles: []string{filepath.Join(tmpDir, "nope.yml")},
		}

		err := req.ParseVarsFromFiles()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("nope.yml"))
	})
})
