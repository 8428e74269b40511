package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-othello/pkg/othello"
)

const (
	frame  = "  +-----------------+\n"
	files  = "    a b c d e f g h\n"
	disc   = "⏺"
	marker = "-"

	blackColor = "1" // red
	whiteColor = "4" // blue
)

// Console prints a framed, colored board. Color support is detected from
// the writer, unless a profile is given (termenv.Ascii for plain text).
type Console struct {
	out *termenv.Output
}

func NewConsole(w io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{out: termenv.NewOutput(w, opts...)}
}

// Plain text console, without any escape sequences
func NewPlainConsole(w io.Writer) *Console {
	return NewConsole(w, termenv.WithProfile(termenv.Ascii))
}

func (c *Console) Render(pos othello.Position, whiteToMove bool, moves othello.Bitboard) error {
	str, err := c.Sprint(pos, whiteToMove, moves)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, str)
	return err
}

// Board as a string, black discs are red, white ones blue
func (c *Console) Sprint(pos othello.Position, whiteToMove bool, moves othello.Bitboard) (string, error) {
	black, white, err := colors(pos, whiteToMove, moves)
	if err != nil {
		return "", err
	}

	blackDisc := c.out.String(disc).Foreground(c.out.Color(blackColor)).String()
	whiteDisc := c.out.String(disc).Foreground(c.out.Color(whiteColor)).String()

	builder := strings.Builder{}
	builder.WriteString(files)
	builder.WriteString(frame)
	for rank := 0; rank < othello.BoardSize; rank++ {
		builder.WriteByte(byte('1' + rank))
		builder.WriteString(" | ")

		for file := 0; file < othello.BoardSize; file++ {
			sq := othello.NewSquare(file, rank)
			switch {
			case black.Occupied(sq):
				builder.WriteString(blackDisc)
			case white.Occupied(sq):
				builder.WriteString(whiteDisc)
			case moves.Occupied(sq):
				builder.WriteString(marker)
			default:
				builder.WriteByte(' ')
			}
			builder.WriteByte(' ')
		}
		builder.WriteString("|\n")
	}
	builder.WriteString(frame)

	return builder.String(), nil
}
