package cmd

import (
	"fmt"
	"strings"

	"github.com/hanseo/scriptmaster/internal"
	"github.com/spf13/cobra"
)

var (
	setRole          string
	setTone          string
	setStructure     string
	setDepth         string
	setForbidden     string
	setFormat        string
	setUserIntent    string
	createFromActive bool
)

// setsCmd represents the sets command group
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage instruction sets",
	Long: `Manage the named instruction sets that drive prompt construction.

Exactly one set is active at a time; generate uses the active set's fields.
Editing a field writes it into the active set.`,
}

var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List instruction sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		if len(session.Registry.Sets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No instruction sets.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Instruction sets"))
		for i, set := range session.Registry.Sets {
			marker := " "
			if set.ID == session.Registry.ActiveID {
				marker = successStyle.Render("*")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %s  %s\n",
				marker, i+1, topicStyle.Render(set.Name), idStyle.Render(set.ID))
		}
		return nil
	},
}

var setsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active set's fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		active := session.Registry.Active()
		if active == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No active instruction set.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n\n",
			topicStyle.Render(active.Name), idStyle.Render(active.ID))
		for _, name := range internal.FieldNames {
			value, _ := session.Registry.Current.Get(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n",
				headerStyle.Render(string(name)), strings.TrimSpace(value))
		}
		return nil
	},
}

var setsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new instruction set and make it active",
	Long: `Create a new instruction set and make it active.

Without field flags the new set starts from the built-in baseline fields;
with --from-active it copies the currently active fields. Field flags
override either base.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		fields := internal.DefaultFields()
		if createFromActive {
			fields = session.Registry.Current
		}
		applyFieldFlags(&fields)

		id, err := session.CreateSet(args[0], fields)
		if err != nil {
			return fmt.Errorf("failed to create set: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created and selected %s  %s\n",
			topicStyle.Render(strings.TrimSpace(args[0])), idStyle.Render(id))
		return nil
	},
}

var setsSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Make an instruction set active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		if err := session.SelectSet(args[0]); err != nil {
			return fmt.Errorf("failed to select set: %w", err)
		}
		active := session.Registry.Active()
		fmt.Fprintf(cmd.OutOrStdout(), "Selected %s\n", topicStyle.Render(active.Name))
		return nil
	},
}

var setsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an instruction set",
	Long: `Delete an instruction set.

Deleting the active set makes the first remaining set active. Deleting the
last set leaves the registry empty; the next start recreates a default set
from the current fields.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		if err := session.DeleteSet(args[0]); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
		return nil
	},
}

var setsEditCmd = &cobra.Command{
	Use:   "edit <field> <value>",
	Short: "Edit one field of the active set",
	Long: fmt.Sprintf(`Edit one instruction field. The edit applies to the current fields and is
written into the active set.

Fields: %s, %s, %s, %s, %s, %s, %s

Blank values are ignored so an accidental empty edit never erases a field.`,
		internal.FieldRole, internal.FieldTone, internal.FieldStructure,
		internal.FieldDepth, internal.FieldForbidden, internal.FieldFormat,
		internal.FieldUserIntent),
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		field := internal.FieldName(args[0])
		value := strings.Join(args[1:], " ")
		if err := session.UpdateField(field, value); err != nil {
			return fmt.Errorf("failed to update field: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s.\n", field)
		return nil
	},
}

// applyFieldFlags overrides fields from any set flags.
func applyFieldFlags(fields *internal.InstructionFields) {
	flags := map[internal.FieldName]string{
		internal.FieldRole:       setRole,
		internal.FieldTone:       setTone,
		internal.FieldStructure:  setStructure,
		internal.FieldDepth:      setDepth,
		internal.FieldForbidden:  setForbidden,
		internal.FieldFormat:     setFormat,
		internal.FieldUserIntent: setUserIntent,
	}
	for name, value := range flags {
		if strings.TrimSpace(value) != "" {
			_ = fields.Set(name, value)
		}
	}
}

func init() {
	rootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsListCmd)
	setsCmd.AddCommand(setsShowCmd)
	setsCmd.AddCommand(setsCreateCmd)
	setsCmd.AddCommand(setsSelectCmd)
	setsCmd.AddCommand(setsDeleteCmd)
	setsCmd.AddCommand(setsEditCmd)

	setsCreateCmd.Flags().BoolVar(&createFromActive, "from-active", false, "Start from the active set's fields")
	setsCreateCmd.Flags().StringVar(&setRole, "role", "", "Role instruction")
	setsCreateCmd.Flags().StringVar(&setTone, "tone", "", "Tone instruction")
	setsCreateCmd.Flags().StringVar(&setStructure, "structure", "", "Structure instruction")
	setsCreateCmd.Flags().StringVar(&setDepth, "depth", "", "Depth instruction")
	setsCreateCmd.Flags().StringVar(&setForbidden, "forbidden", "", "Forbidden-content instruction")
	setsCreateCmd.Flags().StringVar(&setFormat, "format", "", "Format instruction")
	setsCreateCmd.Flags().StringVar(&setUserIntent, "user-intent", "", "User-intent instruction")
}
