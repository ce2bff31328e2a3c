// Package tourney analyses a player's poker tournament results.
//
// Results are kept in a local CSV ledger, one line per tournament played,
// that the player owns and can edit by hand. The package reads that ledger
// and computes how the player is doing:
//   - Records: one played tournament, with its cost (buy-in plus rake), its
//     payout and the derived profit.
//   - Filters: select tournaments by date range, room, format or currency.
//   - Stats: count, in-the-money rate, totals, profit and return on
//     investment of any selection, computed with exact decimal arithmetic.
//   - Groups: break a selection down by format, by buy-in bracket or by
//     day, week or month, and summarize each group.
//   - Series: the cumulated profit or bankroll over time.
//
// Computations are stateless: each one is a pure function of the records it
// is given. The ledger is reloaded on every run of the `tourney` command.
package tourney
