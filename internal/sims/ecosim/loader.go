package ecosim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrWorldUnreadable reports that the world file could not be opened or read.
	ErrWorldUnreadable = errors.New("world file unreadable")
	// ErrNoCells reports that the world file parsed without a single valid CELL record.
	ErrNoCells = errors.New("world file has no cell records")
)

// DefaultWorldFile is the path the driver looks for when none is given.
const DefaultWorldFile = "ecosim.txt"

// MaxLineBytes bounds one world file line. Lines of this length or more are
// skipped as malformed records.
const MaxLineBytes = 64 * 1024

const (
	tagGrid  = "GRID"
	tagParam = "PARAM"
	tagCell  = "CELL"
)

// Source records where a run's starting grid came from.
type Source int

const (
	SourceFile Source = iota
	SourceDefault
)

func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "default"
}

// Load opens path and parses it as a world description on top of base.
func Load(path string, base Config, log Logger) (Config, *Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, nil, fmt.Errorf("%w: %w", ErrWorldUnreadable, err)
	}
	defer f.Close()
	return Parse(f, base, log)
}

// Parse reads a world description. GRID and PARAM directives are applied to
// a copy of base. Malformed records are skipped and logged; unknown
// directives and parameter names are ignored. When no valid CELL record is
// seen the returned error is ErrNoCells and the config parsed so far is still
// returned.
func Parse(r io.Reader, base Config, log Logger) (Config, *Grid, error) {
	log = orNoOp(log)
	cfg := base
	grid := NewGrid()
	sawCell := false

	br := bufio.NewReaderSize(r, MaxLineBytes)
	lineNo := 0
	for {
		text, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return cfg, nil, fmt.Errorf("%w: %w", ErrWorldUnreadable, err)
		}
		lineNo++
		if tooLong {
			log.Warnf("world line %d: exceeds %d bytes, skipping", lineNo, MaxLineBytes)
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		tag, args := fields[0], fields[1:]
		if strings.HasPrefix(tag, "#") {
			continue
		}

		switch tag {
		case tagGrid:
			ints, ok := parseInts(args, 2)
			if !ok {
				log.Warnf("world line %d: malformed GRID record %q", lineNo, text)
				continue
			}
			cfg.Rows, cfg.Cols = ints[0], ints[1]
		case tagParam:
			if len(args) < 2 {
				log.Warnf("world line %d: malformed PARAM record %q", lineNo, text)
				continue
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				log.Warnf("world line %d: PARAM %s has non-numeric value %q", lineNo, args[0], args[1])
				continue
			}
			if !cfg.setParam(args[0], value) {
				log.Debugf("world line %d: ignoring unknown PARAM %q", lineNo, args[0])
			}
		case tagCell:
			ints, ok := parseInts(args, 5)
			if !ok || ints[0] < 0 || ints[1] < 0 {
				log.Warnf("world line %d: malformed CELL record %q", lineNo, text)
				continue
			}
			grid.Populate(Coord{Row: ints[0], Col: ints[1]}, ints[2], ints[3], ints[4])
			sawCell = true
		default:
			log.Debugf("world line %d: skipping unknown directive %q", lineNo, tag)
		}
	}
	if !sawCell {
		return cfg, nil, ErrNoCells
	}
	return cfg, grid, nil
}

// readLine returns the next line without its terminator. A line that does
// not fit in the reader's buffer is drained and reported as tooLong. err is
// io.EOF only when no bytes remain.
func readLine(br *bufio.Reader) (text string, tooLong bool, err error) {
	frag, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !isPrefix {
		return string(frag), false, nil
	}
	for isPrefix {
		_, isPrefix, err = br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, err
		}
	}
	return "", true, nil
}

func parseInts(args []string, n int) ([]int, bool) {
	if len(args) < n {
		return nil, false
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// LoadOrSeed loads path and falls back to SeedDefault when the file is
// unreadable or holds no cells. The fallback is logged, never fatal.
func LoadOrSeed(path string, base Config, log Logger) (Config, *Grid, Source) {
	log = orNoOp(log)
	cfg, grid, err := Load(path, base, log)
	if err == nil {
		log.Infof("loaded world %s: %dx%d grid, %d cells", path, cfg.Rows, cfg.Cols, grid.Len())
		return cfg, grid, SourceFile
	}
	switch {
	case errors.Is(err, ErrWorldUnreadable):
		log.Infof("world file %s not found or unreadable, seeding default grid", path)
	case errors.Is(err, ErrNoCells):
		log.Infof("world file %s has no CELL records, seeding default grid", path)
	default:
		log.Infof("world file %s unusable (%v), seeding default grid", path, err)
	}
	cfg, grid = SeedDefault(cfg)
	return cfg, grid, SourceDefault
}
