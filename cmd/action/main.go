package main

import (
	"log"
	"os"

	"github.com/terraform-ci/terraform-action/actionio"
	"github.com/terraform-ci/terraform-action/logger"
	"github.com/terraform-ci/terraform-action/namer"
	"github.com/terraform-ci/terraform-action/ssh"
	"github.com/terraform-ci/terraform-action/storage"
	"github.com/terraform-ci/terraform-action/terraform"
)

func main() {
	os.Exit(run())
}

// run carries the real work so deferred cleanup, notably the ssh agent
// socket, happens before the process exits.
func run() int {
	req, err := actionio.LoadRequest()
	if err != nil {
		log.Print(err)
		return 1
	}

	if err := req.ParseVarsFromFiles(); err != nil {
		log.Printf("Failed to parse `var_file` input: %s", err)
		return 1
	}

	if req.PrivateKey != "" {
		agent, err := ssh.SpawnAgent()
		if err != nil {
			log.Printf("Failed to spawn ssh agent: %s", err)
			return 1
		}
		defer agent.Shutdown()

		if err := agent.AddKey([]byte(req.PrivateKey)); err != nil {
			log.Printf("Failed to add `private_key` to ssh agent: %s", err)
			return 1
		}
		if req.Env == nil {
			req.Env = map[string]string{}
		}
		for key, value := range agent.Env() {
			req.Env[key] = value
		}
	}

	action := terraform.Action{
		Client: terraform.NewClient(req, os.Stderr),
		Namer:  namer.New(),
		Logger: logger.Logger{Sink: os.Stderr},
	}

	if !req.PlanStorage.IsZero() {
		if err := req.PlanStorage.Validate(); err != nil {
			log.Printf("Failed to validate `plan_storage` input: %s", err)
			return 1
		}
		action.PlanStore = storage.BuildDriver(req.PlanStorage)
	}

	result, runErr := action.Run(req)

	if err := actionio.WriteOutputs(os.Stdout, result); err != nil {
		log.Printf("Failed to write outputs: %s", err)
		return 1
	}
	if runErr != nil {
		log.Print(runErr)
		return result.ExitCode
	}
	return 0
}
