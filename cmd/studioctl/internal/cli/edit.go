package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

// readDescriptor loads and validates a descriptor file. "-" reads stdin; a
// missing file is an empty descriptor.
func readDescriptor(cmd *cobra.Command, path string) (sparse.Section, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
		if os.IsNotExist(err) {
			slog.Debug("descriptor file not found, starting empty", "path", path)
			return sparse.Section{}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	desc, err := studio.ParseDescriptor(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// emit prints the descriptor, or writes it back when --write is set.
func emit(cmd *cobra.Command, path string, desc sparse.Section) error {
	out, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if writeBack && path != "-" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		slog.Info("descriptor written", "path", path)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// editSlot runs fn against the panel's slot of the descriptor in path.
func editSlot(cmd *cobra.Command, path, panelName string, fn func(p *panel.Panel, slot sparse.Section) (sparse.Section, error)) error {
	p, err := panel.Lookup(panelName)
	if err != nil {
		return err
	}
	desc, err := readDescriptor(cmd, path)
	if err != nil {
		return err
	}
	next, err := fn(p, transform.SlotSection(desc, p.Slot))
	if err != nil {
		return err
	}
	return emit(cmd, path, transform.WithSlot(desc, p.Slot, next))
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <panel> <key> <value>",
		Short: "Apply one control edit to a descriptor file",
		Long: "Apply one control edit the way the studio panel would. Checkboxes take\n" +
			"true or false; an empty value clears fields that allow it.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSlot(cmd, args[0], args[1], func(p *panel.Panel, slot sparse.Section) (sparse.Section, error) {
				return p.Update(slot, args[2], args[3])
			})
		},
	}
	cmd.Flags().BoolVarP(&writeBack, "write", "w", false, "Write the result back to the file")
	return cmd
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <file> <panel> [group]",
		Short: "Reset a panel group, or the whole panel",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editSlot(cmd, args[0], args[1], func(p *panel.Panel, slot sparse.Section) (sparse.Section, error) {
				if len(args) == 3 {
					return p.ResetGroup(slot, args[2])
				}
				return p.ResetAll(slot), nil
			})
		},
	}
	cmd.Flags().BoolVarP(&writeBack, "write", "w", false, "Write the result back to the file")
	return cmd
}
