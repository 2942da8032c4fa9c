package models_test

import (
	"github.com/terraform-ci/terraform-action/models"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Request", func() {

	Describe("Validate", func() {

		It("accepts a minimal plan request", func() {
			req := models.Request{Mode: models.ModePlan, Path: "terraform/"}

			Expect(req.Validate()).To(Succeed())
		})

		It("requires a path", func() {
			req := models.Request{Mode: models.ModePlan}

			err := req.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("path"))
		})

		It("rejects unknown modes and lists the supported ones", func() {
			req := models.Request{Mode: "upgrade", Path: "terraform/"}

			err := req.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("'upgrade'"))
			Expect(err.Error()).To(ContainSubstring("'destroy-workspace'"))
		})

		It("accepts every documented mode", func() {
			for _, mode := range models.KnownModes {
				req := models.Request{Mode: mode, Path: "terraform/"}
				Expect(req.Validate()).To(Succeed(), "mode %s", mode)
			}
		})

		It("rejects workspace names with path separators", func() {
			req := models.Request{
				Mode:      models.ModePlan,
				Path:      "terraform/",
				Workspace: "review/42",
			}

			err := req.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("workspace"))
		})

		It("accepts workspace names with dashes and underscores", func() {
			req := models.Request{
				Mode:      models.ModePlan,
				Path:      "terraform/",
				Workspace: "review_pr-42",
			}

			Expect(req.Validate()).To(Succeed())
		})

		It("rejects blank targets", func() {
			req := models.Request{
				Mode:    models.ModePlan,
				Path:    "terraform/",
				Targets: []string{""},
			}

			Expect(req.Validate()).ToNot(Succeed())
		})

		It("only allows random workspace generation with new-workspace", func() {
			req := models.Request{
				Mode:                    models.ModeApply,
				Path:                    "terraform/",
				GenerateRandomWorkspace: true,
			}

			Expect(req.Validate()).ToNot(Succeed())

			req.Mode = models.ModeNewWorkspace
			Expect(req.Validate()).To(Succeed())
		})
	})

	Describe("WorkspaceName", func() {

		It("falls back to the CLI default workspace", func() {
			req := models.Request{Mode: models.ModePlan, Path: "terraform/"}

			Expect(req.WorkspaceName()).To(Equal("default"))
		})

		It("returns the requested workspace when given", func() {
			req := models.Request{Mode: models.ModePlan, Path: "terraform/", Workspace: "staging"}

			Expect(req.WorkspaceName()).To(Equal("staging"))
		})
	})
})
