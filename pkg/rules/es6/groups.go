package es6

// Rule groups within the ES2015+ family.
const (
	GroupArrows      = "arrows"
	GroupClasses     = "classes"
	GroupGenerators  = "generators"
	GroupModules     = "modules"
	GroupPreferences = "preferences"
	GroupSpacing     = "spacing"
	GroupSymbols     = "symbols"
	GroupVariables   = "variables"
)
