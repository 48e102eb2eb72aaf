package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/systemstart/redeploy/pkg/api"
	"github.com/systemstart/redeploy/pkg/fsync"
	"github.com/systemstart/redeploy/pkg/logging"
	"github.com/systemstart/redeploy/pkg/processing"
	"github.com/systemstart/redeploy/pkg/steps"
	"github.com/systemstart/redeploy/pkg/svcctl"
)

var version = "dev"

const (
	_ = iota
	exitDeploymentFileCheckFailed
	exitDotenvError
	exitLoadDeploymentFailed
	exitLoadContextFailed
	exitRunSetupFailed
	exitServiceStopFailed
	exitSyncFailed
	exitServiceStartFailed
	exitStepFailed
)

var (
	deploymentFile string
	contextFile    string
	dryRun         bool
	loggingType    string
	logLevel       string
	showVersion    bool
)

func init() {
	flag.StringVar(
		&deploymentFile,
		"deployment",
		api.DefaultDeploymentFile,
		"deployment configuration file")
	flag.StringVar(
		&contextFile,
		"context-file",
		"",
		"global context YAML file")
	flag.BoolVar(
		&dryRun,
		"dry-run",
		false,
		"log planned sync copies without writing anything")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()
	checkDeploymentFile()

	globalContext := loadGlobalContext()
	deployment := loadDeployment()

	runDeployment(deployment, globalContext)

	slog.Info("done")
}

func runDeployment(deployment *api.Deployment, globalContext map[string]any) {
	collab := steps.Collaborators{
		Services: svcctl.Systemctl{},
		Files:    fsync.Local{},
	}

	result, err := processing.RunDeployment(deployment, globalContext, collab, processing.RunOptions{
		Progress: os.Stdout,
		DryRun:   dryRun,
	})
	if err != nil {
		slog.Error("deployment setup failed", "error", err)
		os.Exit(exitRunSetupFailed)
	}

	if result.Failed() {
		// The run halts fail-fast: a failed sync leaves the service
		// stopped and the operator must restart it after fixing the issue.
		slog.Error("deployment failed", "step", result.FailedStep, "completed", result.Completed, "error", result.Err)
		os.Exit(exitCodeFor(result.Err))
	}

	slog.Info("deployment succeeded", "completed", result.Completed)
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, steps.ErrServiceStop):
		return exitServiceStopFailed
	case errors.Is(err, steps.ErrSync):
		return exitSyncFailed
	case errors.Is(err, steps.ErrServiceStart):
		return exitServiceStartFailed
	default:
		return exitStepFailed
	}
}

func loadDeployment() *api.Deployment {
	deployment, err := api.LoadDeployment(deploymentFile)
	if err != nil {
		slog.Error("failed to load deployment file", "filename", deploymentFile, "error", err)
		os.Exit(exitLoadDeploymentFailed)
	}
	return deployment
}

func loadGlobalContext() map[string]any {
	if contextFile == "" {
		return nil
	}

	ctx, err := processing.LoadContextFile(contextFile)
	if err != nil {
		slog.Error("failed to load context file", "filename", contextFile, "error", err)
		os.Exit(exitLoadContextFailed)
	}
	return ctx
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}

func checkDeploymentFile() {
	st, err := os.Stat(deploymentFile)
	if err != nil {
		slog.Error("failed to check deployment file", "filename", deploymentFile, "error", err)
		os.Exit(exitDeploymentFileCheckFailed)
	}

	if st.IsDir() {
		slog.Error("-deployment is a directory, expected a file", "filename", deploymentFile)
		os.Exit(exitDeploymentFileCheckFailed)
	}
}
