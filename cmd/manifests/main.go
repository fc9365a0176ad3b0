// Command manifests renders the Kubernetes Deployment and Service declarations
// for the greeting service. Scaling is done by re-rendering with a different
// --replicas value and re-applying; the orchestrator converges the running pod
// count, the service itself is unchanged.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"greetsvc/internal/manifest"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		spec   manifest.Spec
		outDir string
	)

	cmd := &cobra.Command{
		Use:           "manifests",
		Short:         "Render Deployment and Service manifests for the greeting service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(spec, outDir, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&spec.Name, "name", manifest.DefaultName, "resource name and app label")
	cmd.Flags().StringVar(&spec.Namespace, "namespace", manifest.DefaultNamespace, "target namespace")
	cmd.Flags().StringVar(&spec.Image, "image", manifest.DefaultImage, "container image reference")
	cmd.Flags().Int32Var(&spec.Replicas, "replicas", manifest.DefaultReplicas, "desired replica count")
	cmd.Flags().Int32Var(&spec.ContainerPort, "port", manifest.DefaultContainerPort, "container listen port")
	cmd.Flags().Int32Var(&spec.ServicePort, "service-port", manifest.DefaultServicePort, "load balancer port")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory to write deployment.yaml and service.yaml (default: stdout)")

	return cmd
}

func render(spec manifest.Spec, outDir string, stdout io.Writer) error {
	deployment, err := manifest.RenderYAML(manifest.BuildDeployment(spec))
	if err != nil {
		return fmt.Errorf("failed to render deployment: %w", err)
	}
	service, err := manifest.RenderYAML(manifest.BuildService(spec))
	if err != nil {
		return fmt.Errorf("failed to render service: %w", err)
	}

	if outDir == "" {
		fmt.Fprintf(stdout, "%s---\n%s", deployment, service)
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "deployment.yaml"), deployment, 0o644); err != nil {
		return fmt.Errorf("failed to write deployment.yaml: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "service.yaml"), service, 0o644); err != nil {
		return fmt.Errorf("failed to write service.yaml: %w", err)
	}
	return nil
}
