// Package rules defines the descriptors of rules reported by divzero.
//
// A descriptor carries the stable identity of a rule together with its presentation texts:
//
//	rules.DivideByZero.String()      → "DividingAnalyzer: Division by literal zero"
//	rules.DivideByZero.Message()     → "division by literal zero"
//	rules.DivideByZero.Category      → "Usage"
//
// Descriptors are built once and never mutated afterwards, so they are shared freely between
// goroutines. Every diagnostic of a rule refers to the same descriptor instance.
//
// Texts are resolved through a [messages.Provider] at construction time. [DivideByZero] uses
// the English texts of the built-in catalog; use [New] to get a descriptor for another locale.
package rules
