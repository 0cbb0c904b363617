package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/rotary/internal/core"
)

// EmptyToken is the token of an empty cell.
const EmptyToken = "."

var kindLetters = map[byte]core.Kind{
	'G': core.KindGeneric,
	'X': core.KindStatic,
	'S': core.KindStart,
	'F': core.KindFinish,
	'L': core.KindLocked,
	'K': core.KindKey,
	'P': core.KindPaint,
	'A': core.KindLauncher,
	'T': core.KindTransport,
}

func kindLetter(k core.Kind) byte {
	for b, kind := range kindLetters {
		if kind == k {
			return b
		}
	}
	return '?'
}

// ParseTile parses a single tile token.
//
// Grammar: "." for an empty cell, otherwise
//
//	<kind><color>[/<target>]:<up><right><down><left>[flag]
//
// kind is one of G X S F L K P A T, colors and connectors are digits 0-7,
// and flag is "+" for an unlocked lock or one of ^ > v < for a launcher's
// facing. Action tiles are returned with a zero Pos; the caller places them.
func ParseTile(token string) (core.Tile, error) {
	token = strings.TrimSpace(token)
	if token == EmptyToken {
		return core.Empty(), nil
	}
	if len(token) < 2 {
		return core.Tile{}, fmt.Errorf("tile %q: too short", token)
	}

	kind, ok := kindLetters[token[0]]
	if !ok {
		return core.Tile{}, fmt.Errorf("tile %q: unknown kind %q", token, token[0])
	}

	head, body, ok := strings.Cut(token[1:], ":")
	if !ok {
		return core.Tile{}, fmt.Errorf("tile %q: missing ':' before connectors", token)
	}

	colorPart, targetPart, hasTarget := strings.Cut(head, "/")
	color, err := parseDigit(colorPart)
	if err != nil {
		return core.Tile{}, fmt.Errorf("tile %q: color: %w", token, err)
	}
	var target core.Color
	if hasTarget {
		if !kind.IsAction() {
			return core.Tile{}, fmt.Errorf("tile %q: %s tiles have no target", token, kind)
		}
		if target, err = parseDigit(targetPart); err != nil {
			return core.Tile{}, fmt.Errorf("tile %q: target: %w", token, err)
		}
	}

	if len(body) < 4 || len(body) > 5 {
		return core.Tile{}, fmt.Errorf("tile %q: expected 4 connector digits and an optional flag", token)
	}
	var conn [4]core.Color
	for i := 0; i < 4; i++ {
		if conn[i], err = parseDigit(body[i : i+1]); err != nil {
			return core.Tile{}, fmt.Errorf("tile %q: connector %s: %w", token, core.Dir(i), err)
		}
	}
	flag := ""
	if len(body) == 5 {
		flag = body[4:]
	}

	switch kind {
	case core.KindGeneric:
		return flagless(token, flag, core.Generic(color, conn))
	case core.KindStatic:
		return flagless(token, flag, core.Static(color, conn))
	case core.KindStart:
		return flagless(token, flag, core.Start(color, conn))
	case core.KindFinish:
		return flagless(token, flag, core.Finish(color, conn))
	case core.KindLocked:
		if flag != "" && flag != "+" {
			return core.Tile{}, fmt.Errorf("tile %q: lock flag must be '+'", token)
		}
		return core.Locked(color, conn, flag == "+"), nil
	case core.KindKey:
		return flagless(token, flag, core.Key(color, target, conn, core.Pos{}))
	case core.KindPaint:
		return flagless(token, flag, core.Paint(color, target, conn, core.Pos{}))
	case core.KindTransport:
		return flagless(token, flag, core.Transport(color, target, conn, core.Pos{}))
	case core.KindLauncher:
		facing := core.DirUp
		if flag != "" {
			d, ok := core.DirFromArrow(rune(flag[0]))
			if !ok {
				return core.Tile{}, fmt.Errorf("tile %q: launcher facing must be one of ^ > v <", token)
			}
			facing = d
		}
		return core.Launcher(color, target, conn, facing, core.Pos{}), nil
	}
	return core.Tile{}, fmt.Errorf("tile %q: unsupported kind", token)
}

func flagless(token, flag string, t core.Tile) (core.Tile, error) {
	if flag != "" {
		return core.Tile{}, fmt.Errorf("tile %q: %s tiles take no flag", token, t.Kind)
	}
	return t, nil
}

func parseDigit(s string) (core.Color, error) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return core.ColorNone, fmt.Errorf("%q is not a digit", s)
	}
	c := core.Color(s[0] - '0')
	if !c.Valid() {
		return core.ColorNone, fmt.Errorf("color %d out of range", c)
	}
	return c, nil
}

// FormatTile is the inverse of ParseTile.
func FormatTile(t core.Tile) string {
	if t.Kind == core.KindEmpty {
		return EmptyToken
	}
	var sb strings.Builder
	sb.WriteByte(kindLetter(t.Kind))
	sb.WriteByte(t.Color.Digit())
	if t.Kind.IsAction() {
		sb.WriteByte('/')
		sb.WriteByte(t.Target.Digit())
	}
	sb.WriteByte(':')
	for _, c := range t.Conn {
		sb.WriteByte(c.Digit())
	}
	switch {
	case t.Kind == core.KindLocked && t.Unlocked:
		sb.WriteByte('+')
	case t.Kind == core.KindLauncher:
		sb.WriteRune(t.Facing.Arrow())
	}
	return sb.String()
}

// ParseRow splits a whitespace-separated row of tile tokens.
func ParseRow(row string) ([]core.Tile, error) {
	fields := strings.Fields(row)
	tiles := make([]core.Tile, 0, len(fields))
	for i, f := range fields {
		t, err := ParseTile(f)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// FormatRow is the inverse of ParseRow.
func FormatRow(tiles []core.Tile) string {
	tokens := make([]string, len(tiles))
	for i, t := range tiles {
		tokens[i] = FormatTile(t)
	}
	return strings.Join(tokens, " ")
}
