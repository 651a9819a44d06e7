package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sarag5/mlcookiecutter/internal/config"
	"github.com/sarag5/mlcookiecutter/internal/prompt"
	"github.com/sarag5/mlcookiecutter/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	createProjectName    string
	createLicense        string
	createCodeowners     string
	createOutputDir      string
	createPythonVersion  string
	createNonInteractive bool
)

func init() {
	addCreateFlags(createCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new ML project structure",
	Long: `Create a new ML/data project in <output-dir>/<project-name>.

Values not given as flags are prompted for when running in a terminal.

Examples:
  mlcookiecutter create --project-name churn --license apache-2.0 --codeowners @org/ml,alice@example.com
  mlcookiecutter create --non-interactive --output-dir ~/src`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

// addCreateFlags registers the create flags; the root command shares them so
// a bare invocation behaves like "create".
func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&createProjectName, "project-name", scaffold.DefaultProjectName, "Name of the project")
	cmd.Flags().StringVar(&createLicense, "license", scaffold.DefaultLicenseID, "License identifier (e.g., mit, apache-2.0)")
	cmd.Flags().StringVar(&createCodeowners, "codeowners", "", "Comma-separated CODEOWNERS for the project")
	cmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Directory to create the project in (default: current directory)")
	cmd.Flags().StringVar(&createPythonVersion, "python-version", "", "Python version for the Dockerfile and CI workflows (default: config python_version)")
	cmd.Flags().BoolVar(&createNonInteractive, "non-interactive", false, "Never prompt; use flag values and defaults")
}

func runCreate(cmd *cobra.Command, args []string) error {
	config.Load()
	logger := newLogger(cmd)
	defer func() { _ = logger.Sync() }()

	p := prompt.New(createNonInteractive)
	flags := cmd.Flags()

	name := createProjectName
	if !flags.Changed("project-name") {
		answer, err := p.Ask("Enter project name", name, prompt.ValueRequired)
		if err != nil {
			return fmt.Errorf("reading project name: %w", err)
		}
		name = answer
	}

	licenseID := createLicense
	if !flags.Changed("license") {
		answer, err := p.Ask("Enter license type (e.g., mit, apache-2.0)", licenseID)
		if err != nil {
			return fmt.Errorf("reading license type: %w", err)
		}
		licenseID = answer
	}

	owners := createCodeowners
	if !flags.Changed("codeowners") {
		answer, err := p.Ask("Enter CODEOWNERS (comma-separated)", owners)
		if err != nil {
			return fmt.Errorf("reading CODEOWNERS: %w", err)
		}
		owners = answer
	}

	pythonVersion := createPythonVersion
	if pythonVersion == "" {
		pythonVersion = config.PythonVersion()
	}

	baseDir, err := resolveBaseDir(createOutputDir)
	if err != nil {
		return err
	}

	req := scaffold.NewRequest(name, licenseID, owners, pythonVersion)
	result, err := scaffold.Generate(cmd.Context(), req, scaffold.Options{
		Fs:       afero.NewOsFs(),
		BaseDir:  baseDir,
		Resolver: newResolver(logger),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	logger.Infof("Project structure created in %s", result.OutputDir)
	return nil
}

// resolveBaseDir returns an absolute base directory, defaulting to the
// current working directory.
func resolveBaseDir(outputDir string) (string, error) {
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory %s: %w", outputDir, err)
	}
	return abs, nil
}
