package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/corpuschat/internal/core/ports/driving"
)

// Output formats for corpus commands.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect a corpus file",
	Long:  `List the records in a corpus file or print a single record.`,
}

var corpusShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List records in the corpus",
	RunE:  runCorpusShow,
}

var corpusGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Print a single record",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusGet,
}

var (
	corpusPath   string
	corpusFormat string
)

func init() {
	corpusCmd.PersistentFlags().StringVarP(&corpusPath, "corpus", "c", "", "Corpus file (default: from settings)")
	corpusCmd.PersistentFlags().StringVarP(&corpusFormat, "format", "f", formatTable, "Output format (table, json, yaml)")
	corpusCmd.AddCommand(corpusShowCmd)
	corpusCmd.AddCommand(corpusGetCmd)
	rootCmd.AddCommand(corpusCmd)
}

func resolveCorpusPath() (string, error) {
	if corpusPath != "" {
		return corpusPath, nil
	}
	settings, err := currentSettings()
	if err != nil {
		return "", err
	}
	return settings.CorpusPath(), nil
}

func runCorpusShow(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	path, err := resolveCorpusPath()
	if err != nil {
		return err
	}

	entries, err := corpusService.List(path)
	if err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	switch corpusFormat {
	case formatTable:
		cmd.Printf("%-6s %s\n", "ID", "NAME")
		for _, e := range entries {
			cmd.Printf("%-6d %s\n", e.ID, e.Name)
		}
		cmd.Printf("\n%d records in %s\n", len(entries), path)
		return nil
	case formatJSON:
		raws := make([]json.RawMessage, len(entries))
		for i, e := range entries {
			raws[i] = e.Raw
		}
		out, err := json.MarshalIndent(raws, "", "  ")
		if err != nil {
			return fmt.Errorf("encode corpus: %w", err)
		}
		cmd.Println(string(out))
		return nil
	case formatYAML:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range entries {
			node, err := jsonToYAMLNode(e.Raw)
			if err != nil {
				return err
			}
			seq.Content = append(seq.Content, node)
		}
		out, err := encodeYAML(seq)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	default:
		return fmt.Errorf("unknown format %q (use table, json or yaml)", corpusFormat)
	}
}

func runCorpusGet(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid record id %q", args[0])
	}

	path, err := resolveCorpusPath()
	if err != nil {
		return err
	}

	entry, err := corpusService.Get(path, id)
	if err != nil {
		return fmt.Errorf("failed to get record %d: %w", id, err)
	}

	return printEntry(cmd, entry)
}

func printEntry(cmd *cobra.Command, entry *driving.CorpusEntry) error {
	switch corpusFormat {
	case formatYAML:
		node, err := jsonToYAMLNode(entry.Raw)
		if err != nil {
			return err
		}
		out, err := encodeYAML(node)
		if err != nil {
			return err
		}
		cmd.Print(out)
		return nil
	case formatTable, formatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, entry.Raw, "", "  "); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		cmd.Println(buf.String())
		return nil
	default:
		return fmt.Errorf("unknown format %q (use table, json or yaml)", corpusFormat)
	}
}

// jsonToYAMLNode parses a JSON value as YAML and switches it to block style.
// Parsing through yaml.Node keeps the record's key order.
func jsonToYAMLNode(raw json.RawMessage) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("convert record: %w", err)
	}
	node := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		node = doc.Content[0]
	}
	blockStyle(node)
	return node, nil
}

func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = 0
	}
	if n.Kind == yaml.ScalarNode && n.Style == yaml.DoubleQuotedStyle {
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func encodeYAML(n *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}
