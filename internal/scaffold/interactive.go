package scaffold

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var windowPresets = []string{
	"600 x 400 (default)",
	"800 x 600",
	"1024 x 768",
	"Custom",
}

var presetSizes = [][2]int{
	{600, 400},
	{800, 600},
	{1024, 768},
}

// RunInteractive walks the user through naming and sizing a new project
// using prompts on r/w. Defaults carry pre-resolved module and author
// values; empty answers keep the default.
func RunInteractive(r io.Reader, w io.Writer, defaults *Data) (*Data, error) {
	reader := bufio.NewReader(r)

	name, err := promptString(reader, w, "Project name", defaults.Name)
	if err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	data := *NewData(name, defaults.Module, defaults.Author)

	sizeIdx, err := selectFromList(reader, w, "Select window size:", windowPresets)
	if err != nil {
		return nil, err
	}
	if sizeIdx < len(presetSizes) {
		data.Width = presetSizes[sizeIdx][0]
		data.Height = presetSizes[sizeIdx][1]
	} else {
		if data.Width, err = promptInt(reader, w, "Window width", data.Width); err != nil {
			return nil, err
		}
		if data.Height, err = promptInt(reader, w, "Window height", data.Height); err != nil {
			return nil, err
		}
	}

	if data.Author, err = promptString(reader, w, "Author", data.Author); err != nil {
		return nil, err
	}
	if data.Module, err = promptString(reader, w, "Module path", data.Module); err != nil {
		return nil, err
	}

	return &data, nil
}

// selectFromList presents a numbered list and returns the selected index.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(items))
	}
	return num - 1, nil
}

func promptString(reader *bufio.Reader, w io.Writer, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func promptInt(reader *bufio.Reader, w io.Writer, label string, def int) (int, error) {
	line, err := promptString(reader, w, label, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", strings.ToLower(label), line)
	}
	return n, nil
}
