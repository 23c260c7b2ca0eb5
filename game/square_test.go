package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareIdentity(t *testing.T) {
	t.Run("every index maps back to itself", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			s, err := SqIndex(i)
			require.NoError(t, err)
			require.Equal(t, i, s.Index())
			require.Equal(t, i/Size, s.Row())
			require.Equal(t, i%Size, s.Col())
		}
	})

	t.Run("constructors agree on the same square", func(t *testing.T) {
		byColRow, err := Sq(3, 0)
		require.NoError(t, err)
		byIndex, err := SqIndex(3)
		require.NoError(t, err)
		byName, err := SqNamed('d', 1)
		require.NoError(t, err)
		byText, err := ParseSquare("d1")
		require.NoError(t, err)

		require.Equal(t, byColRow, byIndex)
		require.Equal(t, byColRow, byName)
		require.Equal(t, byColRow, byText)
		require.Equal(t, "d1", byColRow.String())
	})

	t.Run("designations round trip through the parser", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			s := Square(i)
			parsed, err := ParseSquare(s.String())
			require.NoError(t, err)
			require.Equal(t, s, parsed)
		}
		require.Equal(t, "j10", MustSq(9, 9).String())
	})
}

func TestSquareBounds(t *testing.T) {
	for _, tc := range []struct {
		col, row int
	}{
		{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10},
	} {
		_, err := Sq(tc.col, tc.row)
		require.ErrorIs(t, err, ErrOutOfBounds, "(%d, %d) should be out of bounds", tc.col, tc.row)
		require.False(t, Exists(tc.col, tc.row))
	}

	_, err := SqIndex(100)
	require.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = SqNamed('k', 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = SqNamed('a', 11)
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.Panics(t, func() { MustSq(0, 10) })

	for _, text := range []string{"", "a0", "a11", "k1", "A1", "a1 ", "10a"} {
		_, err := ParseSquare(text)
		require.ErrorIs(t, err, ErrMalformedSquare, "%q should not parse", text)
	}
}

func TestIsQueenMove(t *testing.T) {
	require.False(t, MustSq(1, 5).IsQueenMove(MustSq(1, 5)))
	require.False(t, MustSq(1, 5).IsQueenMove(MustSq(2, 7)))
	require.False(t, MustSq(0, 0).IsQueenMove(MustSq(5, 1)))
	require.True(t, MustSq(1, 1).IsQueenMove(MustSq(9, 9)))
	require.True(t, MustSq(2, 7).IsQueenMove(MustSq(8, 7)))
	require.True(t, MustSq(3, 0).IsQueenMove(MustSq(3, 4)))
	require.True(t, MustSq(7, 9).IsQueenMove(MustSq(0, 2)))

	t.Run("holds exactly for shared rows, columns and diagonals", func(t *testing.T) {
		for a := Square(0); a < NumSquares; a++ {
			for b := Square(0); b < NumSquares; b++ {
				dc, dr := b.Col()-a.Col(), b.Row()-a.Row()
				want := a != b && (dc == 0 || dr == 0 || dc == dr || dc == -dr)
				require.Equal(t, want, a.IsQueenMove(b), "%v-%v", a, b)
			}
		}
	})
}

func TestDirectionAndQueenMove(t *testing.T) {
	center := MustSq(4, 4)
	for _, tc := range []struct {
		to  Square
		dir Direction
	}{
		{MustSq(4, 9), North},
		{MustSq(7, 7), NorthEast},
		{MustSq(9, 4), East},
		{MustSq(8, 0), SouthEast},
		{MustSq(4, 0), South},
		{MustSq(0, 0), SouthWest},
		{MustSq(0, 4), West},
		{MustSq(0, 8), NorthWest},
	} {
		require.Equal(t, tc.dir, center.Direction(tc.to), "%v-%v", center, tc.to)
	}

	t.Run("stepping along the direction reaches the target", func(t *testing.T) {
		for a := Square(0); a < NumSquares; a++ {
			for b := Square(0); b < NumSquares; b++ {
				if !a.IsQueenMove(b) {
					continue
				}
				n := max(abs(b.Col()-a.Col()), abs(b.Row()-a.Row()))
				require.Equal(t, b, a.QueenMove(a.Direction(b), n))
			}
		}
	})

	t.Run("leaving the board yields no square", func(t *testing.T) {
		require.Equal(t, NoSquare, MustSq(0, 0).QueenMove(South, 1))
		require.Equal(t, NoSquare, MustSq(9, 9).QueenMove(NorthEast, 1))
		require.Equal(t, NoSquare, MustSq(4, 4).QueenMove(East, 6))
		require.Equal(t, NoSquare, MustSq(4, 4).QueenMove(NumDirections, 1))
		require.Equal(t, MustSq(9, 4), MustSq(4, 4).QueenMove(East, 5))
	})
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("j4-e9(a9)")
	require.NoError(t, err)
	require.Equal(t, Mv(MustSq(9, 3), MustSq(4, 8), MustSq(0, 8)), m)
	require.Equal(t, "j4-e9(a9)", m.String())

	m, err = ParseMove("b10-j2(b10)")
	require.NoError(t, err)
	require.Equal(t, m.From, m.Spear)

	for _, text := range []string{"j4-e9", "j4 e9(a9)", "j4-e9(a11)", "j4-e9(a9))"} {
		_, err := ParseMove(text)
		require.ErrorIs(t, err, ErrMalformedMove, "%q should not parse", text)
	}
}
