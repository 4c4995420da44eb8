// Package calculator derives business figures from the application snapshot.
//
// Every function is pure and recomputes from the full bills and inventory
// on each call; there are no cached aggregates.
package calculator
