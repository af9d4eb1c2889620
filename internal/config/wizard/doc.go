// Package wizard provides the interactive prompts of easycluster.
//
// RunWizard guides users through creating an easycluster.yaml: subscription,
// resource group, storage and compute settings. It uses charmbracelet/huh for
// form-based input collection. Use BuildConfig to convert results to a Config
// struct, and WriteConfig to generate the YAML output file.
//
// PromptSecret asks for a single masked value and is used by the CLI when a
// password or client secret was not supplied on a terminal session.
package wizard
