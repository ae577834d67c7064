package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileylov/dragsort/internal/dataset"
	"github.com/rileylov/dragsort/internal/reorder"
)

var ErrBadMove = errors.New("invalid move")

// Move is one scripted drag: pick up Source, drop it on Side of Target.
type Move struct {
	Source int
	Target int
	Side   reorder.Side
}

// ParseMove parses "SOURCE:TARGET:above|below". Indices are zero based;
// TARGET may equal the list length to mean the end of the list.
func ParseMove(s string) (Move, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("%w %q: want SOURCE:TARGET:SIDE", ErrBadMove, s)
	}
	src, err := strconv.Atoi(parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: source: %w", ErrBadMove, s, err)
	}
	tgt, err := strconv.Atoi(parts[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: target: %w", ErrBadMove, s, err)
	}
	side, ok := reorder.ParseSide(parts[2])
	if !ok {
		return Move{}, fmt.Errorf("%w %q: side must be above or below", ErrBadMove, s)
	}
	return Move{Source: src, Target: tgt, Side: side}, nil
}

// ApplyMoves replays moves through a drag session, one gesture per move.
// Moves that do not resolve to a drop leave the order unchanged.
func ApplyMoves(items []dataset.Item, moves []Move) []dataset.Item {
	var s reorder.Session[dataset.Item]
	for _, m := range moves {
		s.Start(m.Source)
		s.SetTarget(m.Target, m.Side)
		items = s.Commit(items)
	}
	return items
}

// NewOrderCommand creates the order command, the non-interactive
// counterpart of dragging rows.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	var moves []string

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Apply scripted moves and print the resulting order",
		Long: `Apply one or more moves to the list without opening the interface.

Each move is SOURCE:TARGET:SIDE with zero-based indices into the order as
it stands before that move. TARGET may equal the number of items to move
the source to the end.

Example:
  dragsort order --move 0:3:below --move 3:1:above
  dragsort order --items trips.yaml --move 2:6:above --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(rootOpts.Items)
			if err != nil {
				return err
			}
			parsed := make([]Move, 0, len(moves))
			for _, raw := range moves {
				m, err := ParseMove(raw)
				if err != nil {
					return err
				}
				parsed = append(parsed, m)
			}
			return writeOrder(cmd.OutOrStdout(), rootOpts.Format, ApplyMoves(items, parsed))
		},
	}

	cmd.Flags().StringArrayVar(&moves, "move", nil, "move to apply, SOURCE:TARGET:above|below (repeatable)")

	return cmd
}
