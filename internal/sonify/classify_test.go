package sonify

import (
	"testing"

	"github.com/freeeve/pgnmusic/internal/game"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		move game.Move
		ply  int
		want string
	}{
		{"pawn push", game.NotationMove("e4"), 0, "E4"},
		{"knight", game.NotationMove("Nc6"), 3, "C6"},
		{"capture", game.NotationMove("Nxe5"), 0, "E5"},
		{"queen capture", game.NotationMove("Qxd4"), 1, "D4"},
		{"check", game.NotationMove("Qh5+"), 0, "H5"},
		{"mate", game.NotationMove("Qxe5#"), 2, "E5"},
		{"double plus mate", game.NotationMove("e8++"), 0, "E8"},
		{"promotion", game.NotationMove("e8=Q"), 0, "E8"},
		{"promotion mate", game.NotationMove("e8=Q#"), 0, "E8"},
		{"promotion check", game.NotationMove("a1=R+"), 1, "A1"},
		{"promotion double plus", game.NotationMove("a1=Q++"), 1, "A1"},
		{"lowercase promotion", game.NotationMove("b8=q"), 0, "B8"},
		{"file disambiguation", game.NotationMove("Rae1"), 0, "E1"},
		{"square disambiguation", game.NotationMove("Qh4xe1"), 0, "E1"},
		{"uppercase square", game.NotationMove("NE5"), 0, "E5"},
		{"white short castle", game.NotationMove("O-O"), 8, "G1"},
		{"black short castle", game.NotationMove("O-O"), 9, "G8"},
		{"white long castle", game.NotationMove("O-O-O"), 0, "C1"},
		{"black long castle", game.NotationMove("O-O-O"), 1, "C8"},
		{"castle check", game.NotationMove("O-O+"), 2, "G1"},
		{"castle mate", game.NotationMove("O-O#"), 0, "G1"},
		{"castle double plus", game.NotationMove("O-O++"), 1, "G8"},
		{"long castle mate", game.NotationMove("O-O-O#"), 0, "C1"},
		{"long castle double plus", game.NotationMove("O-O-O++"), 1, "C8"},
		{"structured", game.SquareMove("e", "4"), 0, "E4"},
		{"structured uppercase", game.SquareMove("H", "8"), 5, "H8"},
		{"structured wins over text", game.SquareMove("g", "8").WithText("O-O"), 0, "G8"},
		{"structured off board", game.SquareMove("z", "9"), 0, "X"},
		{"structured too long", game.SquareMove("ee", "4"), 0, "X"},
		{"empty structured falls back to text", game.Move{Kind: game.KindSquare, Col: "e", Text: "d5"}, 0, "D5"},
		{"annotation only", game.NotationMove("??"), 0, "X"},
		{"empty", game.NotationMove(""), 1, "X"},
		{"off board rank", game.NotationMove("e9"), 0, "X"},
		{"trailing garbage", game.NotationMove("e4 hello"), 0, "X"},
		{"triple plus", game.NotationMove("e4+++"), 0, "X"},
		{"zero castle", game.NotationMove("0-0"), 0, "X"},
		{"castle with suffix", game.NotationMove("O-O-O-O"), 0, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.move, tt.ply).String()
			if got != tt.want {
				t.Errorf("Classify(%+v, %d) = %s, want %s", tt.move, tt.ply, got, tt.want)
			}
		})
	}
}

func TestClassify_CastlingParity(t *testing.T) {
	for ply := 0; ply < 40; ply++ {
		rank := byte('1')
		if ply%2 == 1 {
			rank = '8'
		}
		if got := Classify(game.NotationMove("O-O"), ply); got != (Square{File: 'G', Rank: rank}) {
			t.Errorf("O-O at ply %d = %s", ply, got)
		}
		if got := Classify(game.NotationMove("O-O-O"), ply); got != (Square{File: 'C', Rank: rank}) {
			t.Errorf("O-O-O at ply %d = %s", ply, got)
		}
	}
}

func TestClassify_AnnotationStripping(t *testing.T) {
	for ply := 0; ply < 4; ply++ {
		base := Classify(game.NotationMove("e8=Q"), ply)
		for _, text := range []string{"e8=Q#", "e8=Q++", "e8=Q+"} {
			if got := Classify(game.NotationMove(text), ply); got != base {
				t.Errorf("Classify(%q, %d) = %s, want %s", text, ply, got, base)
			}
		}
	}
}

func TestNewSquare(t *testing.T) {
	if got := NewSquare('a', '1'); got != (Square{File: 'A', Rank: '1'}) {
		t.Errorf("NewSquare(a,1) = %+v", got)
	}
	if got := NewSquare('i', '1'); got != Unparseable {
		t.Errorf("NewSquare(i,1) = %+v, want Unparseable", got)
	}
	if got := NewSquare('a', '0'); got != Unparseable {
		t.Errorf("NewSquare(a,0) = %+v, want Unparseable", got)
	}
	sq := NewSquare('h', '8')
	if sq.FileIndex() != 7 || sq.RankIndex() != 7 {
		t.Errorf("H8 indices = (%d, %d), want (7, 7)", sq.FileIndex(), sq.RankIndex())
	}
}
