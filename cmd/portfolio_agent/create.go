package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-generator/internal/apiclient"
	"github.com/jonathan/portfolio-generator/internal/download"
	"github.com/jonathan/portfolio-generator/internal/draft"
	"github.com/jonathan/portfolio-generator/internal/enhance"
	"github.com/jonathan/portfolio-generator/internal/generate"
	"github.com/jonathan/portfolio-generator/internal/task"
	"github.com/jonathan/portfolio-generator/internal/template"
	"github.com/jonathan/portfolio-generator/internal/types"
	"github.com/jonathan/portfolio-generator/internal/wizard"
)

var (
	createBaseURL   string
	createOutputDir string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a portfolio interactively",
	Long: `Walk through the six-step portfolio builder: basic info, education, skills,
projects, experience and template selection. Content can be enhanced with AI at
any point, and the finished portfolio is generated and downloaded as a
deployable zip archive.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createBaseURL, "base-url", "http://localhost:8080", "Portfolio API base URL")
	createCmd.Flags().StringVarP(&createOutputDir, "output", "o", ".", "Directory to save the downloaded archive")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("base-url") && fileConfig.BaseURL != "" {
		createBaseURL = fileConfig.BaseURL
	}
	if !cmd.Flags().Changed("output") && fileConfig.OutputDir != "" {
		createOutputDir = fileConfig.OutputDir
	}

	client := apiclient.New(createBaseURL)
	return runCreateWizard(cmd.Context(), os.Stdin, os.Stdout, client, createOutputDir)
}

// wizardSession holds the state of one interactive build
type wizardSession struct {
	ctx        context.Context
	out        io.Writer
	store      *draft.Store
	controller *wizard.Controller
	enhancer   *enhance.Coordinator
	generator  *generate.Coordinator
	downloader *download.Downloader
	templates  func(context.Context) ([]template.Template, error)

	templateID string
	bundle     *generate.Bundle
}

// runCreateWizard drives the interactive session. Input is line-based so the
// flow can be scripted in tests.
func runCreateWizard(ctx context.Context, in io.Reader, out io.Writer, client *apiclient.Client, outputDir string) error {
	s := &wizardSession{
		ctx:        ctx,
		out:        out,
		store:      draft.NewStore(),
		controller: wizard.NewController(),
		enhancer:   enhance.NewCoordinator(client),
		generator:  generate.NewCoordinator(client),
		downloader: download.NewDownloader(client, outputDir),
		templates:  client.Templates,
	}

	fmt.Fprintln(out, "Portfolio builder. Type 'help' for commands.")
	s.printStep()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		s.dispatch(line)
	}
	return scanner.Err()
}

func (s *wizardSession) dispatch(line string) {
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "help":
		s.printHelp()
	case "show":
		s.printDraft()
	case "next":
		if !s.controller.Next() {
			fmt.Fprintln(s.out, "Already on the last step.")
			return
		}
		s.printStep()
	case "back":
		if !s.controller.Previous() {
			fmt.Fprintln(s.out, "Already on the first step.")
			return
		}
		s.printStep()
	case "set":
		s.setScalar(rest)
	case "add":
		s.addEntry()
	case "remove":
		s.removeEntry(rest)
	case "field":
		s.setField(rest)
	case "template":
		s.selectTemplate(rest)
	case "templates":
		s.listTemplates()
	case "enhance":
		s.enhance()
	case "generate":
		s.generate()
	case "download":
		s.download()
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}
}

func (s *wizardSession) printHelp() {
	fmt.Fprint(s.out, `Commands:
  next, back                       navigate between steps
  set <field> <value>              set name, title, email, phone or about
  add                              add an entry to the current section
  remove <n>                       remove entry n from the current section
  field <n> <name> <value>         set a field of entry n
  template <id>                    select a template
  templates                        list available templates
  enhance                          enhance content with AI
  generate                         generate the portfolio (template step)
  download                         download the generated archive
  show                             print the current draft
  quit                             exit
`)
}

func (s *wizardSession) printStep() {
	step := s.controller.Step()
	fmt.Fprintf(s.out, "\n-- Step %d/6: %s --\n", step.Ordinal(), step)

	if c, ok := step.Collection(); ok {
		s.printCollection(c)
		return
	}

	switch step {
	case wizard.StepBasicInfo:
		snap := s.store.Snapshot()
		fmt.Fprintf(s.out, "name: %s\ntitle: %s\nemail: %s\nphone: %s\nabout: %s\n",
			snap.Name, snap.Title, snap.Email, snap.Phone, snap.About)
	case wizard.StepTemplate:
		if s.templateID == "" {
			fmt.Fprintln(s.out, "No template selected. Use 'templates' to list and 'template <id>' to choose.")
		} else {
			fmt.Fprintf(s.out, "Selected template: %s\n", s.templateID)
		}
	}
}

func (s *wizardSession) printCollection(c draft.Collection) {
	snap := s.store.Snapshot()
	switch c {
	case draft.CollectionEducation:
		for i, e := range snap.Education {
			fmt.Fprintf(s.out, "%d. %s, %s (%s)\n", i+1, e.Degree, e.Institution, e.Year)
		}
	case draft.CollectionSkills:
		for i, e := range snap.Skills {
			fmt.Fprintf(s.out, "%d. %s [%s]\n", i+1, e.Name, e.Level)
		}
	case draft.CollectionProjects:
		for i, e := range snap.Projects {
			fmt.Fprintf(s.out, "%d. %s: %s\n", i+1, e.Title, e.Description)
		}
	case draft.CollectionExperience:
		for i, e := range snap.Experience {
			fmt.Fprintf(s.out, "%d. %s at %s (%s)\n", i+1, e.Position, e.Company, e.Duration)
		}
	}
}

func (s *wizardSession) printDraft() {
	snap := s.store.Snapshot()
	fmt.Fprintf(s.out, "%+v\n", snap)
}

func (s *wizardSession) setScalar(rest string) {
	field, value, ok := strings.Cut(rest, " ")
	if !ok {
		fmt.Fprintln(s.out, "Usage: set <field> <value>")
		return
	}
	if err := s.store.UpdateScalar(field, strings.TrimSpace(value)); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *wizardSession) currentCollection() (draft.Collection, bool) {
	c, ok := s.controller.Step().Collection()
	if !ok {
		fmt.Fprintln(s.out, "The current step has no entries.")
	}
	return c, ok
}

func (s *wizardSession) addEntry() {
	c, ok := s.currentCollection()
	if !ok {
		return
	}
	if err := s.store.AddEntry(c); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.printCollection(c)
}

func (s *wizardSession) removeEntry(rest string) {
	c, ok := s.currentCollection()
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		fmt.Fprintln(s.out, "Usage: remove <n>")
		return
	}
	if err := s.store.RemoveEntry(c, n-1); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.printCollection(c)
}

func (s *wizardSession) setField(rest string) {
	c, ok := s.currentCollection()
	if !ok {
		return
	}
	parts := strings.SplitN(rest, " ", 3)
	if len(parts) < 3 {
		fmt.Fprintln(s.out, "Usage: field <n> <name> <value>")
		return
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		fmt.Fprintln(s.out, "Usage: field <n> <name> <value>")
		return
	}
	if err := s.store.UpdateField(c, n-1, parts[1], strings.TrimSpace(parts[2])); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *wizardSession) selectTemplate(rest string) {
	id := strings.TrimSpace(rest)
	if _, ok := template.Lookup(id); !ok {
		fmt.Fprintf(s.out, "Unknown template %q. Use 'templates' to list options.\n", id)
		return
	}
	s.templateID = id
	fmt.Fprintf(s.out, "Selected template: %s\n", id)
}

func (s *wizardSession) listTemplates() {
	templates, err := s.templates(s.ctx)
	if err != nil {
		// The catalog is fixed, so fall back to the local copy when offline
		templates = template.Catalog()
	}
	for _, t := range templates {
		fmt.Fprintf(s.out, "%-22s %s - %s\n", t.ID, t.Name, t.Description)
	}
}

func (s *wizardSession) enhance() {
	fmt.Fprintln(s.out, "Enhancing content...")
	t := task.Go(func() ([]string, error) {
		return s.enhancer.Enhance(s.ctx, s.store)
	})

	suggestions, err := t.Wait()
	if err != nil {
		fmt.Fprintf(s.out, "Enhancement failed: %v\n", err)
		return
	}

	fmt.Fprintln(s.out, "Content enhanced.")
	for _, suggestion := range suggestions {
		fmt.Fprintf(s.out, "  Suggestion: %s\n", suggestion)
	}
}

func (s *wizardSession) generate() {
	if !s.controller.AtGenerationGate() {
		fmt.Fprintln(s.out, "Generation is available on the template step.")
		return
	}

	if report := types.CheckCompleteness(s.store.Snapshot()); !report.Complete() {
		fmt.Fprintf(s.out, "Note: some fields are still empty: %s\n", strings.Join(report.MissingFields, ", "))
	}

	fmt.Fprintln(s.out, "Generating portfolio...")
	t := task.Go(func() (*generate.Bundle, error) {
		bundle, message, err := s.generator.Generate(s.ctx, s.store, s.templateID)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(s.out, message)
		return bundle, nil
	})

	bundle, err := t.Wait()
	if err != nil {
		fmt.Fprintf(s.out, "Generation failed: %v\n", err)
		return
	}

	s.bundle = bundle
	fmt.Fprintf(s.out, "Portfolio ready: %s. Use 'download' to save the archive.\n", bundle.Result.ArtifactID)
}

func (s *wizardSession) download() {
	if !s.bundle.Valid() {
		fmt.Fprintln(s.out, "Nothing to download: generate a portfolio first.")
		return
	}

	path, err := s.downloader.Download(s.ctx, s.bundle.Result.ArtifactID, s.bundle.Draft.Name)
	if err != nil {
		// Keep the handle so a failed download can be retried
		fmt.Fprintf(s.out, "Download failed: %v\n", err)
		return
	}
	s.bundle = nil
	fmt.Fprintf(s.out, "Saved %s\n", path)
}
