package selection

// DefaultRules picks the composition features the way the converter always
// has. Order matters: reconquest has to run before conquer.
const DefaultRules = `
feature "democracy" {
  when = "Government == \"democratic\" && HasTargets(\"contain\")"
}

feature "absolutist_empire" {
  when = "Government == \"absolutist\" && (HasTargets(\"colonies\") || HasTargets(\"annexation\"))"
}

feature "communist_coup" {
  when = "Government == \"communism\" && HasTargets(\"coup\")"
}

feature "communist_war" {
  when = "Government == \"communism\" && HasTargets(\"war\")"
}

feature "fascist_annexation" {
  when = "Government == \"fascism\" && (HasTargets(\"annexation\") || HasTargets(\"sudeten\"))"
}

feature "fascist_sudeten" {
  when = "Government == \"fascism\" && HasTargets(\"sudeten\")"
}

feature "great_power_war" {
  when = "HasTargets(\"great_powers\") && Government != \"neutrality\" && HasIdeology(Government)"
}

feature "reconquest" {
  when = "len(CoreStates) > 0"
}

feature "conquer" {
  when = "Strategies > 0"
}

feature "integrate_puppets" {
  when = "len(Puppets) > 0"
}
`
