package focusid

import "strings"

// Customized is the id of a template copied for a single country.
func Customized(base, tag string) string {
	return base + tag
}

// Targeted is the id of a template copied for a country acting on a target.
func Targeted(base, tag, target string) string {
	return base + tag + target
}

// Influence is the id of the communist influence focus aimed at target.
func Influence(target, home string) string {
	return "Influence_" + target + "_" + home
}

// Coup is the id of the communist coup focus aimed at target.
func Coup(target, home string) string {
	return "Coup_" + target + "_" + home
}

// Anschluss is the id of the fascist annexation focus aimed at target.
func Anschluss(home, target string) string {
	return home + "_anschluss_" + target
}

// Sudeten is the id of the fascist state demand focus aimed at target.
func Sudeten(home, target string) string {
	return home + "_sudeten_" + target
}

// Finish is the id of the focus that finishes off a sudeten target.
func Finish(home, target string) string {
	return home + "_finish_" + target
}

// War is the id of a war focus against target.
func War(target, home string) string {
	return "War" + target + home
}

// Alliance is the id of the focus proposing an alliance to ally.
func Alliance(ally, home string) string {
	return "Alliance_" + ally + home
}

// Summit is the id of the ideological summit focus. Only the first three
// letters of the ideology are used.
func Summit(ideology, home string) string {
	return Short(ideology) + "_Summit" + home
}

// GPWar is the id of the great power war focus against target.
func GPWar(target, home string) string {
	return "GP_War" + target + home
}

// Short abbreviates an ideology name to its first three characters.
func Short(ideology string) string {
	if len(ideology) <= 3 {
		return ideology
	}
	return ideology[:3]
}

// Prerequisite renders a prerequisite expression satisfied by any of ids.
func Prerequisite(ids ...string) string {
	var b strings.Builder
	b.WriteString("= {")
	for _, id := range ids {
		b.WriteString(" focus = ")
		b.WriteString(id)
	}
	b.WriteString(" }")
	return b.String()
}
