package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a set of answers without the TUI",
	Long: `Classify scores answers the same way the quiz does and prints the result.

Answers are question ids mapped to a letter value or "-" for no preference,
given as repeated --answer ID=VALUE flags and/or an --answers-file holding a
JSON or YAML object such as {"1": "E", "2": "-"}. Flags override the file.
In YAML a bare "-", "~" or empty value also means no preference.
Unanswered questions count toward neither letter.`,
	Example: "  sixteen classify --answer 1=E --answer 4=N --answer 7=F --answer 10=P",
	Args:    cobra.NoArgs,
	RunE:    runClassify,
}

func init() {
	classifyCmd.Flags().StringArray("answer", nil, "Answer as ID=VALUE (repeatable)")
	classifyCmd.Flags().String("answers-file", "", "JSON or YAML file of id: value answers")
}

func runClassify(cmd *cobra.Command, args []string) error {
	c, err := content.Load(settings.Content)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	answers := map[int]string{}
	if path, _ := cmd.Flags().GetString("answers-file"); path != "" {
		fromFile, err := readAnswersFile(path)
		if err != nil {
			return err
		}
		for id, v := range fromFile {
			answers[id] = v
		}
	}
	flags, _ := cmd.Flags().GetStringArray("answer")
	fromFlags, err := parseAnswerFlags(flags)
	if err != nil {
		return err
	}
	for id, v := range fromFlags {
		answers[id] = v
	}

	if err := checkAnswers(c, answers); err != nil {
		return err
	}

	tally, t := personality.Classify(answers, c.Questions)
	return printClassification(cmd.OutOrStdout(), c, answers, tally, t)
}

// parseAnswerFlags parses ID=VALUE pairs.
func parseAnswerFlags(pairs []string) (map[int]string, error) {
	out := make(map[int]string, len(pairs))
	for _, p := range pairs {
		idStr, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q: want ID=VALUE", p)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("answer %q: bad question id: %w", p, err)
		}
		out[id] = strings.ToUpper(strings.TrimSpace(value))
	}
	return out, nil
}

// readAnswersFile decodes a JSON or YAML mapping of question id to value.
func readAnswersFile(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}
	out := make(map[int]string, len(raw))
	for k, node := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("answers file %s: bad question id %q", path, k)
		}
		v, err := answerValue(&node)
		if err != nil {
			return nil, fmt.Errorf("answers file %s: question %d: %w", path, id, err)
		}
		out[id] = v
	}
	return out, nil
}

// answerValue reads one answer. Null, and the one-item null sequence YAML
// makes of an unquoted "-", both mean no preference.
func answerValue(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return personality.NoPreference, nil
		}
		return strings.ToUpper(strings.TrimSpace(n.Value)), nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 || (len(n.Content) == 1 && n.Content[0].Tag == "!!null") {
			return personality.NoPreference, nil
		}
	}
	return "", fmt.Errorf("want a letter or %q at line %d", personality.NoPreference, n.Line)
}

// checkAnswers rejects unknown ids and values a question does not accept.
func checkAnswers(c *content.Content, answers map[int]string) error {
	var errs []error
	for id, v := range answers {
		q, ok := c.QuestionByID(id)
		if !ok {
			errs = append(errs, fmt.Errorf("question %d: no such question", id))
			continue
		}
		if !q.Accepts(v) {
			errs = append(errs, fmt.Errorf("question %d: %q is not one of %s, %s or %s",
				id, v, q.Options[0].Value, q.Options[1].Value, personality.NoPreference))
		}
	}
	return errors.Join(errs...)
}

func printClassification(w io.Writer, c *content.Content, answers map[int]string, tally personality.Tally, t personality.Type) error {
	title := "(no result record)"
	if rec, err := c.Lookup(t); err == nil {
		title = rec.Title
	}

	fmt.Fprintf(w, "%s  %s\n", t, title)
	fmt.Fprintf(w, "answered %d/%d\n\n", len(answers), len(c.Questions))
	for _, a := range personality.Axes {
		first, second := a.First(), a.Second()
		fmt.Fprintf(w, "  %-10s %s %d - %d %s  (of %d)\n",
			a.Name(), first, tally.Count(first), tally.Count(second), second, c.AxisSize(a))
	}
	fmt.Fprintf(w, "\n%s\n", c.CTALink(t))
	return nil
}
