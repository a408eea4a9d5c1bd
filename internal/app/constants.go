package app

// MinPlayersToStart defines the minimum eligible roster size for a simulation.
// Keep this centralized so tests or local runs can adjust the rule without
// touching multiple call sites.
const MinPlayersToStart = 2
