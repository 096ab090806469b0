package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/job-restart-operator/internal/adapters/outbound/k8s"
	"github.com/skillcoder/job-restart-operator/internal/config"
	"github.com/skillcoder/job-restart-operator/internal/infra/logging"
	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

var errUnknownOutput = errors.New("unknown output format")

type jobGetter interface {
	GetJobQuery(ctx context.Context, namespace, name string) (reconciler.JobSnapshot, error)
}

func manifestCmd() *cobra.Command {
	var (
		namespace string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "manifest <job>",
		Short: "Print the manifest a restart would create for a job",
		Long: `Fetch the job once and print the sanitized manifest that would be used to
recreate it. Nothing in the cluster is changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadClusterAccess()
			if namespace == "" {
				namespace = cfg.Namespace
			}

			// logs go to stderr so stdout stays a clean manifest
			logger := slog.New(logging.NewHandler(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel))

			clientset, err := k8s.NewClientset(cfg.KubeMaster, cfg.KubeConfig)
			if err != nil {
				return fmt.Errorf("new clientset: %w", err)
			}

			return writeManifest(cmd.Context(), cmd.OutOrStdout(), k8s.New(logger, clientset), namespace, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace of the job (default $NAMESPACE or flickr-downloader)")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml, json")

	return cmd
}

func writeManifest(
	ctx context.Context,
	w io.Writer,
	repo jobGetter,
	namespace,
	jobName,
	output string,
) error {
	if output != "yaml" && output != "json" {
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}

	snapshot, err := repo.GetJobQuery(ctx, namespace, jobName)
	if err != nil {
		return fmt.Errorf("get job %s/%s: %w", namespace, jobName, err)
	}

	manifest, err := reconciler.BuildManifest(snapshot)
	if err != nil {
		return fmt.Errorf("build manifest: %w", err)
	}

	var data []byte

	switch output {
	case "json":
		data, err = json.MarshalIndent(manifest.Object, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(manifest.Object)
	}

	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
