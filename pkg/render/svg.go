package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

const (
	cellSize = 50
	margin   = 30
	boardPx  = cellSize * othello.BoardSize
)

// SVG writes the board as a standalone SVG document, one per Render call
type SVG struct {
	w io.Writer
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (s *SVG) Render(pos othello.Position, whiteToMove bool, moves othello.Bitboard) error {
	black, white, err := colors(pos, whiteToMove, moves)
	if err != nil {
		return err
	}

	canvas := svg.New(s.w)
	canvas.Start(boardPx+2*margin, boardPx+2*margin)
	canvas.Rect(margin, margin, boardPx, boardPx, "fill:#2e7d32")

	for i := 0; i <= othello.BoardSize; i++ {
		offset := margin + i*cellSize
		canvas.Line(offset, margin, offset, margin+boardPx, "stroke:black;stroke-width:2")
		canvas.Line(margin, offset, margin+boardPx, offset, "stroke:black;stroke-width:2")
	}

	// Coordinates
	for i := 0; i < othello.BoardSize; i++ {
		center := margin + i*cellSize + cellSize/2
		canvas.Text(center, margin-10, string(rune('a'+i)), "text-anchor:middle;font-size:16px;font-family:sans-serif")
		canvas.Text(margin-15, center+5, fmt.Sprint(i+1), "text-anchor:middle;font-size:16px;font-family:sans-serif")
	}

	for _, sq := range (black | white | moves).Squares() {
		x := margin + sq.File()*cellSize + cellSize/2
		y := margin + sq.Rank()*cellSize + cellSize/2

		switch {
		case black.Occupied(sq):
			canvas.Circle(x, y, cellSize*2/5, "fill:black")
		case white.Occupied(sq):
			canvas.Circle(x, y, cellSize*2/5, "fill:white;stroke:black")
		default:
			canvas.Circle(x, y, cellSize/10, "fill:black;fill-opacity:0.4")
		}
	}

	canvas.End()
	return nil
}
