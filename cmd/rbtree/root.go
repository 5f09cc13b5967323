package main

import (
	"bufio"
	"fmt"
	"iter"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cyraxred/rbtree"
)

// orderValue restricts --order to the three supported traversals.
type orderValue string

func (value *orderValue) String() string {
	return string(*value)
}

func (value *orderValue) Type() string {
	return "order"
}

func (value *orderValue) Set(raw string) error {
	switch raw {
	case "in", "pre", "post":
		*value = orderValue(raw)
		return nil
	}
	return errors.Errorf("unsupported traversal order %q, want in, pre or post", raw)
}

var _ pflag.Value = (*orderValue)(nil)

var traversalOrder = orderValue("in")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rbtree [keys...]",
	Short: "Build a red-black tree from integer keys and print it.",
	Long: `rbtree reads integer keys from the command line, from --input or from stdin,
inserts them into a red-black tree, optionally removes some of them again and
prints the requested traversal of the result. --dump prints the tree structure
with the node colors instead.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		input, err := flags.GetString("input")
		if err != nil {
			panic(err)
		}
		removals, err := flags.GetIntSlice("remove")
		if err != nil {
			panic(err)
		}
		dump, err := flags.GetBool("dump")
		if err != nil {
			panic(err)
		}

		keys, err := readKeys(args, input)
		if err != nil {
			log.Fatalf("failed to read the keys: %v", err)
		}
		tree := rbtree.NewOrdered[int]()
		for _, key := range keys {
			tree.Insert(key)
		}
		for _, key := range removals {
			if !tree.Remove(key) {
				log.Printf("key %d is not in the tree", key)
			}
		}

		if dump {
			fmt.Print(tree.Dump())
			return
		}
		var sequence iter.Seq[int]
		switch traversalOrder {
		case "pre":
			sequence = tree.PreOrder()
		case "post":
			sequence = tree.PostOrder()
		default:
			sequence = tree.InOrder()
		}
		printed := false
		for key := range sequence {
			if printed {
				fmt.Print(" ")
			}
			fmt.Print(key)
			printed = true
		}
		if printed {
			fmt.Println()
		}
		if min, ok := tree.MinValue(); ok {
			max, _ := tree.MaxValue()
			fmt.Fprintf(os.Stderr, "%d nodes, min %d, max %d\n", tree.Len(), min, max)
		}
	},
}

// readKeys gathers the keys from the positional arguments, the --input file
// and stdin, in that order of preference.
func readKeys(args []string, input string) ([]int, error) {
	words := args
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read %s", input)
		}
		words = append(words, strings.Fields(string(data))...)
	}
	if len(words) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			words = append(words, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "cannot read stdin")
		}
	}
	keys := make([]int, 0, len(words))
	for _, word := range words {
		key, err := strconv.Atoi(word)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", word)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// versionCmd prints the library version and the Git commit hash
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information and exit.",
	Long:  ``,
	Args:  cobra.MaximumNArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\nGit:     %s\n", rbtree.BinaryVersion, rbtree.BinaryGitHash)
	},
}

func init() {
	rootFlags := rootCmd.Flags()
	rootFlags.String("input", "", "Path to a file with whitespace-separated integer keys.")
	err := rootCmd.MarkFlagFilename("input")
	if err != nil {
		panic(err)
	}
	rootFlags.IntSlice("remove", nil, "Keys to remove after the tree is built.")
	rootFlags.Bool("dump", false, "Print the tree structure with colors instead of a traversal.")
	rootFlags.Var(&traversalOrder, "order", "Traversal order: in, pre or post.")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(stressCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
