package core

import (
	"encoding/binary"
	"hash/fnv"
)

// tileBytes is the encoded size of one tile in Key and Hash.
const tileBytes = 17

// appendTile writes every tile field as fixed-width bytes.
func appendTile(b []byte, t Tile) []byte {
	b = append(b, byte(t.Kind), byte(t.Color),
		byte(t.Conn[0]), byte(t.Conn[1]), byte(t.Conn[2]), byte(t.Conn[3]),
		byte(t.Target), boolByte(t.Unlocked), byte(t.Facing))
	// Same width as the player position, so no two positions share bytes.
	b = binary.LittleEndian.AppendUint32(b, uint32(t.Pos.Row))
	return binary.LittleEndian.AppendUint32(b, uint32(t.Pos.Col))
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Key returns an exact binary encoding of the grid state. Two grids have the
// same key if and only if they are Equal.
func (g *Grid) Key() string {
	b := make([]byte, 0, 16+len(g.Tiles)*tileBytes)
	b = binary.LittleEndian.AppendUint32(b, uint32(g.W))
	b = binary.LittleEndian.AppendUint32(b, uint32(g.H))
	b = binary.LittleEndian.AppendUint32(b, uint32(g.Player.Row))
	b = binary.LittleEndian.AppendUint32(b, uint32(g.Player.Col))
	for _, t := range g.Tiles {
		b = appendTile(b, t)
	}
	return string(b)
}

// Hash returns an FNV-64a digest of the grid state. Equal grids always hash
// identically.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(g.W))
	binary.LittleEndian.PutUint32(buf[4:], uint32(g.H))
	binary.LittleEndian.PutUint32(buf[8:], uint32(g.Player.Row))
	binary.LittleEndian.PutUint32(buf[12:], uint32(g.Player.Col))
	h.Write(buf[:])
	tb := make([]byte, 0, tileBytes)
	for _, t := range g.Tiles {
		tb = appendTile(tb[:0], t)
		h.Write(tb)
	}
	return h.Sum64()
}
