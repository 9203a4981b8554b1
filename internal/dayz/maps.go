package dayz

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"chosenoffset.com/endofdayz/internal/world/grid"
)

//go:embed maps/*.txt
var MapsFS embed.FS

// DefaultMap is the embedded map used when none is configured.
const DefaultMap = "maps/basic.txt"

var (
	ErrNoPlayer       = errors.New("map has no player")
	ErrManyPlayers    = errors.New("map has more than one player")
	ErrEmptyMap       = errors.New("map is empty")
	ErrRaggedMap      = errors.New("map rows differ in length")
	ErrMissingMapFile = errors.New("map not found")
)

// ParseMap reads a text map: one line per row, one character per cell,
// '.' or ' ' for empty cells.
func ParseMap(text string) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	cols := len([]rune(lines[0]))
	g := NewGrid(len(lines), cols)
	players := 0
	for r, line := range lines {
		cells := []rune(line)
		if len(cells) != cols {
			return nil, fmt.Errorf("row %d: %w", r, ErrRaggedMap)
		}
		for c, ch := range cells {
			if ch == '.' || ch == ' ' {
				continue
			}
			kind, err := ParseKind(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			if kind == KindPlayer {
				players++
			}
			g.entities[grid.Pos(r, c)] = NewEntity(kind)
		}
	}

	switch {
	case players == 0:
		return nil, ErrNoPlayer
	case players > 1:
		return nil, ErrManyPlayers
	}
	return g, nil
}

// LoadMap reads a map from disk, falling back to the embedded maps when
// the path does not exist on disk. An empty path loads DefaultMap.
func LoadMap(path string) (*Grid, error) {
	if path == "" {
		path = DefaultMap
	}
	data, err := os.ReadFile(path)
	if err != nil {
		embedded, embedErr := MapsFS.ReadFile(path)
		if embedErr != nil {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingMapFile)
		}
		data = embedded
	}

	g, err := ParseMap(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return g, nil
}
