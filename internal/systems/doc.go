// Package systems holds the per-step simulation systems. A step runs them in
// a fixed order: MonsterAI, then MapIndexer, then Visibility.
package systems
