package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"jira-scribe/internal/config"
	"jira-scribe/internal/helpers"
	"jira-scribe/internal/services"
)

var (
	configFile string
	saveOutput bool
	startAt    int
	maxResults int
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "jira-scribe",
		Short: "jira-scribe - render Jira API responses as markdown",
		Long: `jira-scribe queries a Jira Cloud instance and renders projects, issues,
transitions, and issue-creation metadata as structured markdown documents
suitable for terminals and chat interfaces.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&saveOutput, "save", "s", false, "Save the rendered markdown to the output directory")

	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		RunE:  runInit,
	}
	rootCmd.AddCommand(initCmd)

	var projectsCmd = &cobra.Command{
		Use:   "projects",
		Short: "List accessible Jira projects",
		RunE:  runProjects,
	}
	addPagingFlags(projectsCmd)
	rootCmd.AddCommand(projectsCmd)

	var issuesCmd = &cobra.Command{
		Use:   "issues <JQL>",
		Short: "Search issues with JQL",
		Args:  cobra.ExactArgs(1),
		RunE:  runIssues,
	}
	addPagingFlags(issuesCmd)
	rootCmd.AddCommand(issuesCmd)

	var createMetaCmd = &cobra.Command{
		Use:   "create-meta <PROJECT>",
		Short: "Show issue-creation metadata for a project",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreateMeta,
	}
	createMetaCmd.Flags().StringP("issue-type", "t", "", "Issue type ID to scope the metadata to")
	rootCmd.AddCommand(createMetaCmd)

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new issue",
		RunE:  runCreate,
	}
	createCmd.Flags().StringP("project", "p", "", "Project key (defaults to the configured project)")
	createCmd.Flags().StringP("type", "t", "Task", "Issue type name")
	createCmd.Flags().String("summary", "", "Issue summary (required)")
	createCmd.Flags().StringP("description", "d", "", "Issue description")
	createCmd.MarkFlagRequired("summary")
	rootCmd.AddCommand(createCmd)

	var transitionsCmd = &cobra.Command{
		Use:   "transitions <ISSUE>",
		Short: "List workflow transitions available to an issue",
		Args:  cobra.ExactArgs(1),
		RunE:  runTransitions,
	}
	rootCmd.AddCommand(transitionsCmd)

	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&startAt, "start-at", 0, "Offset of the first result to return")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum results per page")
}

// newService loads configuration, configures logging, and builds the service
func newService() (*services.JiraService, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	return services.NewJiraService(cfg), nil
}

// emit prints a rendered document and optionally saves it
func emit(svc *services.JiraService, prefix, doc string) error {
	fmt.Println(doc)
	if saveOutput {
		return svc.Save(prefix, doc)
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	helpers.PrintTitle("Initializing jira-scribe configuration")

	if _, err := os.Stat(configFile); err == nil {
		helpers.PrintInfo("Delete %s first if you want to start over.", configFile)
		return fmt.Errorf("configuration file already exists at %s", configFile)
	}

	data, err := yaml.Marshal(config.Sample())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	helpers.PrintSuccess("Configuration file created at %s", configFile)
	helpers.PrintWarning("Edit the configuration and add your Jira credentials before running other commands.")
	return nil
}

func runProjects(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	doc, err := svc.Projects(startAt, maxResults)
	if err != nil {
		return err
	}
	return emit(svc, "projects", doc)
}

func runIssues(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	doc, err := svc.SearchIssues(args[0], startAt, maxResults)
	if err != nil {
		return err
	}
	return emit(svc, "issues", doc)
}

func runCreateMeta(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	issueTypeID, _ := cmd.Flags().GetString("issue-type")
	doc, err := svc.CreateMeta(args[0], issueTypeID)
	if err != nil {
		return err
	}
	return emit(svc, "create-meta", doc)
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	project, _ := cmd.Flags().GetString("project")
	issueType, _ := cmd.Flags().GetString("type")
	summary, _ := cmd.Flags().GetString("summary")
	description, _ := cmd.Flags().GetString("description")

	doc, err := svc.CreateIssue(services.CreateIssueParams{
		ProjectKey:  project,
		IssueType:   issueType,
		Summary:     summary,
		Description: description,
	})
	if err != nil {
		return err
	}
	return emit(svc, "create", doc)
}

func runTransitions(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	doc, err := svc.Transitions(args[0])
	if err != nil {
		return err
	}
	return emit(svc, "transitions", doc)
}
