// models/icon.go - Closed icon enumeration
package models

// Icon names a renderable symbol. The set is closed: the frontend resolves
// each key to an icon component, so unknown keys are rejected at the API
// boundary instead of failing silently at render time.
type Icon string

const (
	IconCode       Icon = "Code"
	IconFileCode   Icon = "FileCode"
	IconTerminal   Icon = "Terminal"
	IconDatabase   Icon = "Database"
	IconServer     Icon = "Server"
	IconCloud      Icon = "Cloud"
	IconGlobe      Icon = "Globe"
	IconLayout     Icon = "Layout"
	IconPalette    Icon = "Palette"
	IconSmartphone Icon = "Smartphone"
	IconCpu        Icon = "Cpu"
	IconGitBranch  Icon = "GitBranch"
	IconBoxes      Icon = "Boxes"
	IconWrench     Icon = "Wrench"
	IconShield     Icon = "Shield"
	IconZap        Icon = "Zap"
	IconBrain      Icon = "Brain"
	IconRocket     Icon = "Rocket"
)

var knownIcons = map[Icon]bool{
	IconCode: true, IconFileCode: true, IconTerminal: true, IconDatabase: true,
	IconServer: true, IconCloud: true, IconGlobe: true, IconLayout: true,
	IconPalette: true, IconSmartphone: true, IconCpu: true, IconGitBranch: true,
	IconBoxes: true, IconWrench: true, IconShield: true, IconZap: true,
	IconBrain: true, IconRocket: true,
}

// Valid reports whether the icon is part of the closed set
func (i Icon) Valid() bool {
	return knownIcons[i]
}
