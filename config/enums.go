package config

//go:generate go tool go-enum --marshal --names

// Specification of duplicate definitions removal.
// ENUM(structural, textual)
type DedupeMode int

// What to do when several fragments style the same selector.
// ENUM(ignore, warn)
type CollisionMode int
