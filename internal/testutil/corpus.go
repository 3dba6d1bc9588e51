package testutil

import (
	"context"
	"testing"

	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
	"github.com/specialistvlad/focusgridgo/internal/world"
	"github.com/stretchr/testify/require"
)

// Corpus is a template corpus declaring every template the composition
// features use, plus a small custom branch rooted at "flavor_root".
const Corpus = `
# generic tree

shared_focus "political_effort" {
  icon = "GFX_goal_generic_political_pressure"
  text = "political_effort"
  completion_reward = "= {\n\t\t\tadd_political_power = 120\n\t\t}"
}

shared_focus "collectivist_ethos" {
  prerequisite         = ["= { focus = political_effort }"]
  mutually_exclusive   = "= { focus = liberty_ethos }"
  relative_position_id = "political_effort"
  y                    = 1
  available            = "= {\n\t\t\tOR = {\n\t\t\t\t$GOVERNMENTS\t\t\t}\n\t\t}"
  completion_reward    = "= {\n\t\t\tadd_ideas = $IDEA\n\t\t}"
}

shared_focus "nationalism_focus" {
  prerequisite         = ["= { focus = collectivist_ethos }"]
  relative_position_id = "collectivist_ethos"
  y                    = 1
}

shared_focus "militarism" {
  prerequisite         = ["= { focus = nationalism_focus }"]
  relative_position_id = "nationalism_focus"
  y                    = 1
}

shared_focus "military_youth" {
  prerequisite         = ["= { focus = militarism }"]
  relative_position_id = "militarism"
  y                    = 1
  completion_reward    = "= { add_ideas = military_youth_focus }"
}

shared_focus "paramilitarism" {
  prerequisite         = ["= { focus = military_youth }"]
  relative_position_id = "military_youth"
  y                    = 1
}

shared_focus "internationalism_focus" {
  prerequisite         = ["= { focus = collectivist_ethos }"]
  relative_position_id = "collectivist_ethos"
  y                    = 1
}

shared_focus "political_correctness" {
  prerequisite         = ["= { focus = internationalism_focus }"]
  relative_position_id = "internationalism_focus"
  y                    = 1
}

shared_focus "indoctrination_focus" {
  prerequisite         = ["= { focus = political_correctness }"]
  relative_position_id = "political_correctness"
  y                    = 1
}

shared_focus "political_commissars" {
  prerequisite         = ["= { focus = indoctrination_focus }"]
  relative_position_id = "indoctrination_focus"
  y                    = 1
}

shared_focus "absolutism_focus" {
  prerequisite         = ["= { focus = collectivist_ethos }"]
  relative_position_id = "collectivist_ethos"
  y                    = 1
}

shared_focus "royal_dictatorship_focus" {
  prerequisite         = ["= { focus = absolutism_focus }"]
  relative_position_id = "absolutism_focus"
  y                    = 1
}

shared_focus "royal_army_tradition_focus" {
  prerequisite         = ["= { focus = royal_dictatorship_focus }"]
  relative_position_id = "royal_dictatorship_focus"
  y                    = 1
}

shared_focus "historical_claims_focus" {
  prerequisite         = ["= { focus = royal_army_tradition_focus }"]
  relative_position_id = "royal_army_tradition_focus"
  y                    = 1
}

shared_focus "radical_focus" {
  prerequisite         = ["= { focus = collectivist_ethos }"]
  relative_position_id = "collectivist_ethos"
  y                    = 1
}

shared_focus "private_channels_focus" {
  prerequisite         = ["= { focus = radical_focus }"]
  relative_position_id = "radical_focus"
  y                    = 1
}

shared_focus "hardfought_market_focus" {
  prerequisite         = ["= { focus = private_channels_focus }"]
  relative_position_id = "private_channels_focus"
  y                    = 1
}

shared_focus "army_provides_focus" {
  prerequisite         = ["= { focus = hardfought_market_focus }"]
  relative_position_id = "hardfought_market_focus"
  y                    = 1
}

shared_focus "ideological_fanaticism" {
  prerequisite = ["= { focus = paramilitarism }"]
}

shared_focus "liberty_ethos" {
  prerequisite         = ["= { focus = political_effort }"]
  mutually_exclusive   = "= { focus = collectivist_ethos }"
  relative_position_id = "political_effort"
  y                    = 1
  available            = "= {\n\t\t\thas_government = democratic\n\t\t}"
  completion_reward    = "= {\n\t\t\tadd_ideas = liberty_ethos_focus\n\t\t}"
  ai_will_do           = "= {\n\t\t\tfactor = 95\n\t\t\tmodifier = {\n\t\t\t\tfactor = 0.1\n\t\t\t\tany_neighbor_country = {\n\t\t\t\t\t$GOVERNMENTS\t\t\t\t}\n\t\t\t\t#NO_MAJOR_DEMOCRATIC_NEIGHBOR\n\t\t\t}\n\t\t}"
}

shared_focus "neutrality_focus" {
  prerequisite         = ["= { focus = liberty_ethos }"]
  mutually_exclusive   = "= { focus = interventionism_focus }"
  relative_position_id = "liberty_ethos"
  y                    = 1
  ai_will_do           = "= { factor = 0 }"
}

shared_focus "deterrence" {
  prerequisite         = ["= { focus = neutrality_focus }"]
  relative_position_id = "neutrality_focus"
  y                    = 1
}

shared_focus "interventionism_focus" {
  prerequisite         = ["= { focus = liberty_ethos }"]
  mutually_exclusive   = "= { focus = neutrality_focus }"
  relative_position_id = "liberty_ethos"
  x                    = 2
  y                    = 1
}

shared_focus "volunteer_corps" {
  prerequisite         = ["= { focus = interventionism_focus }"]
  relative_position_id = "interventionism_focus"
  y                    = 1
}

shared_focus "foreign_expeditions" {
  prerequisite         = ["= { focus = volunteer_corps }"]
  relative_position_id = "volunteer_corps"
  y                    = 1
}

shared_focus "why_we_fight" {
  prerequisite         = ["= { focus = foreign_expeditions focus = deterrence }"]
  relative_position_id = "deterrence"
  y                    = 1
}

shared_focus "technology_sharing" {
  prerequisite = ["= { focus = ideological_fanaticism focus = why_we_fight }"]
  y            = 6
}

# democracy

focus "WarProp" {
  text              = "WarProp"
  available         = "= {\n\t\t\tthreat > $WTMODIFIER\n\t\t}"
  completion_reward = "= { add_war_support = 0.05 }"
}

focus "PrepInter" {
  prerequisite         = ["= { focus = WarProp }"]
  relative_position_id = "WarProp"
  y                    = 1
  available            = "= {\n\t\t\tthreat > $WTMODIFIER\n\t\t}"
}

focus "Lim" {
  prerequisite         = ["= { focus = PrepInter }"]
  relative_position_id = "PrepInter"
  y                    = 1
  available            = "= {\n\t\t\tthreat > $WTMODIFIER\n\t\t}"
}

focus "WarPlan" {
  text                 = "WarPlan"
  prerequisite         = ["= { focus = Lim }"]
  relative_position_id = "Lim"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  completion_reward    = "= { add_ideas = war_plan }"
}

focus "Embargo" {
  text                 = "Embargo"
  prerequisite         = ["= { focus = WarPlan }"]
  relative_position_id = "WarPlan"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  completion_reward    = "= { $TARGET = { add_opinion_modifier = { target = ROOT modifier = embargo } } }"
}

focus "WAR" {
  text                 = "WAR"
  prerequisite         = ["= { focus = Embargo }"]
  relative_position_id = "Embargo"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  completion_reward    = "= { create_wargoal = { type = topple_government target = $TARGET } }"
}

# absolutist empire

focus "EmpireGlory" {
  completion_reward = "= { add_political_power = 150 }"
}

focus "StrengthenColonies" {
  prerequisite = ["= { focus = EmpireGlory }"]
  ai_will_do   = "= { factor = 1 }"
}

focus "StrengthenHome" {
  prerequisite = ["= { focus = EmpireGlory }"]
  ai_will_do   = "= { factor = 1 }"
}

focus "ColonialInd" {
  prerequisite = ["= { focus = StrengthenColonies }"]
}

focus "ColonialHwy" {
  prerequisite = ["= { focus = ColonialInd }"]
}

focus "ResourceFac" {
  prerequisite = ["= { focus = ColonialInd }"]
}

focus "ColonialArmy" {
  prerequisite = ["= { focus = StrengthenColonies }"]
}

focus "Protectorate" {
  text              = "Protectorate"
  available         = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { is_puppet = no }\n\t\t}"
  bypass            = "= { $TARGET = { is_puppet_of = ROOT } }"
  ai_will_do        = "= {\n\t\t\tfactor = 10\n\t\t}"
  completion_reward = "= { create_wargoal = { type = puppet_wargoal_focus target = $TARGET } }"
}

focus "TradeEmpire" {
  prerequisite = ["= { focus = ColonialHwy focus = ResourceFac }"]
}

focus "IndHome" {
  prerequisite = ["= { focus = StrengthenHome }"]
}

focus "NationalHwy" {
  prerequisite = ["= { focus = IndHome }"]
}

focus "NatCollege" {
  prerequisite = ["= { focus = IndHome }"]
}

focus "MilitaryBuildup" {
  prerequisite = ["= { focus = NatCollege }"]
}

focus "PrepTheBorder" {
  prerequisite = ["= { focus = StrengthenHome }"]
}

focus "NatSpirit" {
  prerequisite = ["= { focus = PrepTheBorder }"]
}

focus "Annex" {
  text              = "Annex"
  available         = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass            = "= { NOT = { country_exists = $TARGET } }"
  ai_will_do        = "= {\n\t\t\tfactor = 10\n\t\t}"
  completion_reward = "= { create_wargoal = { type = annex_everything target = $TARGET } }"
}

# communist

focus "Home_of_Revolution" {
  completion_reward = "= { add_political_power = 100 }"
}

focus "Influence_" {
  text         = "Influence_"
  prerequisite = ["= { focus = Home_of_Revolution }"]
  available    = "= { $TARGET = { exists = yes } }"
}

focus "Coup_" {
  text              = "Coup_"
  available         = "= { $TARGET = { communism < 0.5 } }"
  completion_reward = "= { $TARGET = { start_civil_war = { ideology = communism } } }"
}

focus "StrengthCom" {
  completion_reward = "= { add_war_support = 0.1 }"
}

focus "Inter_Com_Pres" {
  text              = "Inter_Com_Pres"
  prerequisite      = ["= { focus = StrengthCom }"]
  completion_reward = "= { add_named_threat = { threat = 3 name = $TEXT } }"
}

focus "War" {
  text              = "War"
  prerequisite      = ["= { focus = Inter_Com_Pres }"]
  available         = "= {\n\t\t\t#DATE\t\t\thas_war = no\n\t\t}"
  bypass            = "= { has_war_with = $TARGET }"
  ai_will_do        = "= {\n\t\t\tfactor = 5\n\t\t\tmodifier = {\n\t\t\t\tfactor = 0\n\t\t\t\t#WAR_WITH_TARGETS\t\t\t}\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  completion_reward = "= {\n\t\t\tcreate_wargoal = { type = annex_everything target = $TARGET }\n\t\t\tcustom_effect_tooltip = $TARGETNAME\n\t\t}"
}

# fascist

focus "The_third_way" {
  text              = "The_third_way"
  completion_reward = "= { add_named_threat = { threat = 2 name = $TEXT } }"
}

focus "mil_march" {
  prerequisite = ["= { focus = The_third_way }"]
}

focus "_anschluss_" {
  text                 = "_anschluss_"
  prerequisite         = ["= { focus = mil_march }"]
  relative_position_id = "The_third_way"
  available            = "= {\n\t\t\t#DATE\t\t\t$TARGET = { is_in_faction = no }\n\t\t}"
  completion_reward    = "= {\n\t\t\tcustom_effect_tooltip = $TARGETNAME\n\t\t\t$TARGET = { country_event = NFEvents.$EVENTID }\n\t\t}"
}

focus "expand_the_reich" {
  text              = "expand_the_reich"
  completion_reward = "= { add_named_threat = { threat = 3 name = $TEXT } }"
}

focus "_sudeten_" {
  text              = "_sudeten_"
  prerequisite      = ["= { focus = expand_the_reich }"]
  available         = "= {\n\t\t\t#DATE\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass            = "= { has_war_with = $TARGET }"
  completion_reward = "= {\n\t\t\tcustom_effect_tooltip = $TARGETNAME\n\t\t\t$TARGET = { country_event = NFEvents.$EVENTID }\n\t\t}"
}

focus "_finish_" {
  text              = "_finish_"
  available         = "= {\n\t\t\t#DATE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass            = "= { has_war_with = $TARGET }"
  completion_reward = "= { create_wargoal = { type = annex_everything target = $TARGET } custom_effect_tooltip = $TARGETNAME }"
}

# great power war

focus "_Summit" {
  text              = "_Summit"
  completion_reward = "= { add_ideas = $IDEOLOGY_summit }"
}

focus "Alliance_" {
  text              = "Alliance_"
  available         = "= { $ALLY = { exists = yes } }"
  bypass            = "= { is_in_faction_with = $ALLY }"
  completion_reward = "= {\n\t\t\t$ALLY = { country_event = { id = NFEvents.$EVENTID } }\n\t\t}"
}

focus "GP_War" {
  text              = "GP_War"
  available         = "= {\n\t\t\t#DATE\n\t\t}"
  bypass            = "= { has_war_with = $TARGET }"
  ai_will_do        = "= {\n\t\t\tfactor = $FACTOR\n\t\t\tmodifier = {\n\t\t\t\tfactor = 0\n\t\t\t\t#WAR_WITH_TARGETS\t\t\t}\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  completion_reward = "= { create_wargoal = { type = annex_everything target = $TARGET } custom_effect_tooltip = $TARGETNAME }"
}

# reconquest

focus "reclaim_cores" {
  text              = "reclaim_cores"
  completion_reward = "= { add_political_power = 50 }"
}

focus "raise_matter" {
  text                 = "raise_matter"
  prerequisite         = ["= { focus = reclaim_cores }"]
  relative_position_id = "reclaim_cores"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  ai_will_do           = "= {\n\t\t\tfactor = $REVANCHISM\n\t\t\t#FASCPOP\n\t\t\t#FASCGOV\n\t\t}"
  completion_reward    = "= {\n\t\t\tadd_popularity = { ideology = fascism popularity = $POPULARITY }\n\t\t}"
}

focus "build_public_support" {
  text                 = "build_public_support"
  prerequisite         = ["= { focus = raise_matter }"]
  relative_position_id = "raise_matter"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  ai_will_do           = "= {\n\t\t\tfactor = $REVANCHISM\n\t\t\t#FASCPOP\n\t\t\t#FASCGOV\n\t\t\tmodifier = { factor = 0 $TAG = { has_war = yes } }\n\t\t}"
  completion_reward    = "= {\n\t\t\tadd_popularity = { ideology = fascism popularity = $POPULARITY }\n\t\t\tadd_war_support = $WARSUPPORT\n\t\t}"
}

focus "territory_or_war" {
  text                 = "territory_or_war"
  prerequisite         = ["= { focus = build_public_support }"]
  relative_position_id = "build_public_support"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  ai_will_do           = "= {\n\t\t\tfactor = $REVANCHISM\n\t\t\t#FASCGOV\n\t\t\tmodifier = { factor = 0 $TAG = { has_war = yes } }\n\t\t}"
  completion_reward    = "= { $TARGET = { country_event = revanchism.1 } }"
}

focus "war_plan" {
  text                 = "war_plan"
  prerequisite         = ["= { focus = territory_or_war }"]
  relative_position_id = "territory_or_war"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  ai_will_do           = "= {\n\t\t\tfactor = $REVANCHISM\n\t\t\t#FASCGOV\n\t\t}"
  completion_reward    = "= { add_ai_strategy = { type = antagonize id = $TARGET value = 100 } }"
}

focus "declare_war" {
  text                 = "declare_war"
  prerequisite         = ["= { focus = war_plan }"]
  relative_position_id = "war_plan"
  y                    = 1
  available            = "= {\n\t\t\t#TRUCE\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  bypass               = "= { has_war_with = $TARGET }"
  ai_will_do           = "= {\n\t\t\tfactor = $REVANCHISM\n\t\t\t#FASCGOV\n\t\t}"
  completion_reward    = "= {\n\t\t\tcreate_wargoal = { type = take_state_focus target = $TARGET generator = { $CORE_STATES} }\n\t\t}"
}

focus "cleanup_revanchism" {
  text                 = "cleanup_revanchism"
  prerequisite         = ["= { focus = declare_war }"]
  relative_position_id = "declare_war"
  y                    = 1
  available            = "= { NOT = { has_war_with = $TARGET } }"
  completion_reward    = "= {\n\t\t\tadd_to_variable = { revanchism = -$REVANCHISM }\n\t\t\tadd_to_variable = { revanchism_stab = $STABILITY }\n\t\t\t$TARGET = { add_stability = -0.05 }\n\t\t}"
}

# conquest

focus "border_disputes" {
  text                 = "border_disputes"
  relative_position_id = "reclaim_cores"
  available            = "= {\n\t\t\t#TRUCE\n\t\t\tNOT = { #OWNSCLAIM }\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  ai_will_do           = "= { factor = 10 modifier = { factor = 0 $TARGET = { is_major = yes } } }"
}

focus "assert_claims" {
  text                 = "assert_claims"
  prerequisite         = ["= { focus = border_disputes }"]
  relative_position_id = "border_disputes"
  y                    = 1
  available            = "= {\n\t\t\t#DATE\n\t\t\tNOT = { #OWNSCLAIM }\n\t\t\t$TARGET = { exists = yes }\n\t\t}"
  ai_will_do           = "= { factor = 10 modifier = { factor = 0 $TARGET = { is_major = yes } } }"
  completion_reward    = "= {\n\t\t\t#ADDCLAIM\n\t\t\t$TARGET = { add_opinion_modifier = { target = ROOT modifier = hostile } }\n\t\t}"
}

focus "prepare_for_war" {
  text                 = "prepare_for_war"
  prerequisite         = ["= { focus = assert_claims }"]
  relative_position_id = "assert_claims"
  y                    = 1
  available            = "= { NOT = { #OWNSCLAIM } $TARGET = { exists = yes } }"
  bypass               = "= { has_war_with = $TARGET }"
}

focus "neighbor_war" {
  text                 = "neighbor_war"
  prerequisite         = ["= { focus = prepare_for_war }"]
  relative_position_id = "prepare_for_war"
  y                    = 1
  available            = "= { NOT = { #OWNSCLAIM } $TARGET = { exists = yes } }"
  bypass               = "= { has_war_with = $TARGET }"
  completion_reward    = "= { create_wargoal = { type = take_state_focus target = $TARGET generator = $CLAIMED_STATES } }"
}

# puppets

focus "integrate_satellite" {
  text              = "integrate_satellite"
  select_effect     = "= { #TARGET = { set_country_flag = being_integrated } }"
  bypass            = "= { NOT = { country_exists = #TARGET } }"
  completion_reward = "= { annex_country = { target = #TARGET } }"
}

# custom branch

focus "flavor_root" {
  icon = "GFX_goal_generic_national_unity"
  text = "flavor_root"
  x    = 3
}

focus "flavor_child" {
  prerequisite         = ["= { focus = flavor_root }"]
  relative_position_id = "flavor_root"
  x                    = -1
  y                    = 1
}

focus "flavor_sibling" {
  prerequisite         = ["= { focus = flavor_root }"]
  relative_position_id = "flavor_root"
  x                    = 1
  y                    = 1
}

focus "flavor_finale" {
  prerequisite         = ["= { focus = flavor_child focus = flavor_sibling }"]
  relative_position_id = "flavor_root"
  y                    = 2
}
`

// NewPool returns a template pool loaded with Corpus.
func NewPool(t *testing.T) *templatestore.Pool {
	t.Helper()
	pool := templatestore.New()
	err := pool.LoadDocuments(context.Background(), templatestore.Document{Name: "corpus.hcl", Data: []byte(Corpus)})
	require.NoError(t, err)
	return pool
}

// NewLocalisation returns a store holding the english entries of the
// targeted templates in Corpus.
func NewLocalisation(t *testing.T) *localisation.Store {
	t.Helper()
	store := localisation.NewStore()
	for key, text := range map[string]string{
		"WarPlan":             "War plans against $TARGET",
		"WarPlan_desc":        "Prepare for a war with $TARGET.",
		"_Summit":             "The $TARGET summit",
		"_Summit_desc":        "Gather the $TARGET nations.",
		"GPWar":               "War with $TARGET",
		"GPWar_desc":          "Crush $TARGET.",
		"integrate_satellite": "Integrate $TARGET",
	} {
		store.Set("english", key, text)
	}
	return store
}

// World is a small world document exercising every composition feature.
const World = `
major_ideologies = ["absolutist", "communism", "democratic", "fascism", "neutrality"]

state "5" {
  owner     = "POL"
  provinces = [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]
}

state "6" {
  owner     = "GER"
  provinces = [20, 21]
}

state "8" {
  owner     = "DEN"
  provinces = [30]
}

state "9" {
  owner     = "CZE"
  provinces = [40, 41]
}

country "GER" {
  name        = "Germany"
  government  = "fascism"
  war_policy  = "jingoism"
  relations   = { POL = -100, DEN = 0, FRA = -50, CZE = -40, AUS = 20 }
  truces      = { FRA = "1939.6.1" }
  core_states = [5, 6]
  allies      = ["ITA"]
  puppets     = { SLO = "puppet" }

  demanded_states = { CZE = [9] }

  conquer_strategy "DEN" {
    value         = 100
    claimed_state = 8
  }
  conquer_strategy "POL" {
    value = 80
  }
  conquer_strategy "SWE" {
    value = 5
  }

  targets {
    annexation   = ["AUS"]
    sudeten      = ["CZE"]
    allies       = ["ITA"]
    great_powers = ["FRA", "ENG"]
  }
}

country "FRA" {
  name       = "France"
  government = "democratic"
  war_policy = "anti_military"

  targets {
    contain = ["GER"]
  }
}

country "SOV" {
  name       = "Soviet Union"
  government = "communism"

  targets {
    coup = ["LIT", "EST", "LAT"]
    war  = ["POL", "FIN", "ROM", "TUR"]
  }
}

country "ENG" {
  name       = "United Kingdom"
  government = "absolutist"

  targets {
    colonies   = ["EGY", "IRQ"]
    annexation = ["IRE"]
  }
}

country "ITA" {
  name       = "Italy"
  government = "fascism"
}

country "POL" {
  name       = "Poland"
  government = "neutrality"
}

country "DEN" {
  name       = "Denmark"
  government = "democratic"
}

country "SWE" {
  name       = "Sweden"
  government = "democratic"
}

country "CZE" {
  name       = "Czechoslovakia"
  government = "democratic"
}

country "AUS" {
  name       = "Austria"
  government = "neutrality"
}

country "SLO" {
  name       = "Slovakia"
  government = "fascism"
  overlord   = "GER"
}

country "LIT" {
  name       = "Lithuania"
  government = "neutrality"
}

country "EST" {
  name       = "Estonia"
  government = "neutrality"
}

country "LAT" {
  name       = "Latvia"
  government = "neutrality"
}

country "FIN" {
  name       = "Finland"
  government = "democratic"
}

country "ROM" {
  name       = "Romania"
  government = "absolutist"
}

country "TUR" {
  government = "neutrality"
}

country "EGY" {
  name       = "Egypt"
  government = "absolutist"
}

country "IRQ" {
  name       = "Iraq"
  government = "absolutist"
}

country "IRE" {
  name       = "Ireland"
  government = "democratic"
}
`

// NewWorld parses World.
func NewWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.Parse(context.Background(), []byte(World), "world.hcl")
	require.NoError(t, err)
	return w
}
