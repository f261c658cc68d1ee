package dataset

import "stressload/internal/frame"

// canonicalNames maps the raw questionnaire headers of the stress dataset
// to the snake_case identifiers used everywhere downstream. The
// stress-level dataset already ships with snake_case headers.
var canonicalNames = map[string]string{
	"Gender": "gender",
	"Age":    "age",
	"Have you recently experienced stress in your life?":                  "experienced_stress",
	"Have you noticed a rapid heartbeat or palpitations?":                 "rapid_heartbeat",
	"Have you been dealing with anxiety or tension recently?":             "anxiety_tension",
	"Do you face any sleep problems or difficulties falling asleep?":      "sleep_problems",
	"Have you been getting headaches more often than usual?":              "headaches",
	"Do you get irritated easily?":                                        "irritability",
	"Do you have trouble concentrating on your academic tasks?":           "concentration_difficulty",
	"Have you been feeling sadness or low mood?":                          "low_mood",
	"Have you been experiencing any illness or health issues?":            "health_issues",
	"Do you often feel lonely or isolated?":                               "loneliness",
	"Do you feel overwhelmed with your academic workload?":                "workload_overwhelm",
	"Are you in competition with your peers, and does it affect you?":     "peer_competition",
	"Do you find that your relationship often causes you stress?":         "relationship_stress",
	"Are you facing any difficulties with your professors or instructors?": "professor_difficulties",
	"Is your working environment unpleasant or stressful?":                "unpleasant_environment",
	"Do you struggle to find time for relaxation and leisure activities?": "no_relaxation_time",
	"Is your hostel or home environment causing you difficulties?":        "home_environment_issues",
	"Do you lack confidence in your academic performance?":                "low_academic_confidence",
	"Do you lack confidence in your choice of academic subjects?":         "low_subject_confidence",
	"Academic and extracurricular activities conflicting for you?":        "activity_conflict",
	"Do you attend classes regularly?":                                    "regular_class_attendance",
	"Have you gained/lost weight?":                                        "weight_change",
	"Which type of stress do you primarily experience?":                   "stress_type",
}

// rawStressHeaders is the stress dataset's header row in file order.
var rawStressHeaders = []string{
	"Gender",
	"Age",
	"Have you recently experienced stress in your life?",
	"Have you noticed a rapid heartbeat or palpitations?",
	"Have you been dealing with anxiety or tension recently?",
	"Do you face any sleep problems or difficulties falling asleep?",
	"Have you been getting headaches more often than usual?",
	"Do you get irritated easily?",
	"Do you have trouble concentrating on your academic tasks?",
	"Have you been feeling sadness or low mood?",
	"Have you been experiencing any illness or health issues?",
	"Do you often feel lonely or isolated?",
	"Do you feel overwhelmed with your academic workload?",
	"Are you in competition with your peers, and does it affect you?",
	"Do you find that your relationship often causes you stress?",
	"Are you facing any difficulties with your professors or instructors?",
	"Is your working environment unpleasant or stressful?",
	"Do you struggle to find time for relaxation and leisure activities?",
	"Is your hostel or home environment causing you difficulties?",
	"Do you lack confidence in your academic performance?",
	"Do you lack confidence in your choice of academic subjects?",
	"Academic and extracurricular activities conflicting for you?",
	"Do you attend classes regularly?",
	"Have you gained/lost weight?",
	"Which type of stress do you primarily experience?",
}

// RawStressColumns returns the stress dataset's raw header names in file
// order, used by fixture generation and tests.
func RawStressColumns() []string {
	out := make([]string, len(rawStressHeaders))
	copy(out, rawStressHeaders)
	return out
}

// Canonicalize renames the merged frame's columns to their canonical
// snake_case identifiers in place. Unknown columns keep their names.
func Canonicalize(f *frame.Frame) {
	f.Rename(canonicalNames)
}
