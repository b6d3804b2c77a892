// meta/meta.go
package meta

// SevensOutDice defines the number of dice rolled in Sevens Out.
const SevensOutDice = 2

// ThreeOrMoreDice defines the number of dice rolled in Three or More.
const ThreeOrMoreDice = 5

// BustSum ends a Sevens Out game when rolled.
const BustSum = 7

// TargetScore ends a Three or More game once a match would reach it.
const TargetScore = 20

// MatchPoints is awarded for three or more of a kind.
const MatchPoints = 12

// MatchSize is the smallest run of equal faces that scores.
const MatchSize = 3

// PairSize is a run of equal faces that offers a reroll.
const PairSize = 2

// MaxRounds caps automated games.
const MaxRounds = 10000
