package model

import (
	"fmt"

	"stressload/internal/frame"
)

// StressRecord is the typed representation of one row of the merged table:
// demographics and renamed questionnaire responses from the stress dataset,
// followed by the psychometric scores and label from the stress-level
// dataset. Field order matches the canonical merged column order.
// All fields are Likert-style or coded integers except StressType.
type StressRecord struct {
	Gender                  int64  `parquet:"gender"`
	Age                     int64  `parquet:"age"`
	ExperiencedStress       int64  `parquet:"experienced_stress"`
	RapidHeartbeat          int64  `parquet:"rapid_heartbeat"`
	AnxietyTension          int64  `parquet:"anxiety_tension"`
	SleepProblems           int64  `parquet:"sleep_problems"`
	Headaches               int64  `parquet:"headaches"`
	Irritability            int64  `parquet:"irritability"`
	ConcentrationDifficulty int64  `parquet:"concentration_difficulty"`
	LowMood                 int64  `parquet:"low_mood"`
	HealthIssues            int64  `parquet:"health_issues"`
	Loneliness              int64  `parquet:"loneliness"`
	WorkloadOverwhelm       int64  `parquet:"workload_overwhelm"`
	PeerCompetition         int64  `parquet:"peer_competition"`
	RelationshipStress      int64  `parquet:"relationship_stress"`
	ProfessorDifficulties   int64  `parquet:"professor_difficulties"`
	UnpleasantEnvironment   int64  `parquet:"unpleasant_environment"`
	NoRelaxationTime        int64  `parquet:"no_relaxation_time"`
	HomeEnvironmentIssues   int64  `parquet:"home_environment_issues"`
	LowAcademicConfidence   int64  `parquet:"low_academic_confidence"`
	LowSubjectConfidence    int64  `parquet:"low_subject_confidence"`
	ActivityConflict        int64  `parquet:"activity_conflict"`
	RegularClassAttendance  int64  `parquet:"regular_class_attendance"`
	WeightChange            int64  `parquet:"weight_change"`
	StressType              string `parquet:"stress_type"`

	AnxietyLevel               int64 `parquet:"anxiety_level"`
	SelfEsteem                 int64 `parquet:"self_esteem"`
	MentalHealthHistory        int64 `parquet:"mental_health_history"`
	Depression                 int64 `parquet:"depression"`
	Headache                   int64 `parquet:"headache"`
	BloodPressure              int64 `parquet:"blood_pressure"`
	SleepQuality               int64 `parquet:"sleep_quality"`
	BreathingProblem           int64 `parquet:"breathing_problem"`
	NoiseLevel                 int64 `parquet:"noise_level"`
	LivingConditions           int64 `parquet:"living_conditions"`
	Safety                     int64 `parquet:"safety"`
	BasicNeeds                 int64 `parquet:"basic_needs"`
	AcademicPerformance        int64 `parquet:"academic_performance"`
	StudyLoad                  int64 `parquet:"study_load"`
	TeacherStudentRelationship int64 `parquet:"teacher_student_relationship"`
	FutureCareerConcerns       int64 `parquet:"future_career_concerns"`
	SocialSupport              int64 `parquet:"social_support"`
	PeerPressure               int64 `parquet:"peer_pressure"`
	ExtracurricularActivities  int64 `parquet:"extracurricular_activities"`
	Bullying                   int64 `parquet:"bullying"`
	StressLevel                int64 `parquet:"stress_level"`
}

// LabelColumn is the classification target. Values are 0 (low),
// 1 (medium), 2 (high).
const LabelColumn = "stress_level"

// StressTypeColumn is the only non-integer column in the merged table.
const StressTypeColumn = "stress_type"

// Columns returns the canonical merged column names in order.
func Columns() []string {
	return []string{
		"gender",
		"age",
		"experienced_stress",
		"rapid_heartbeat",
		"anxiety_tension",
		"sleep_problems",
		"headaches",
		"irritability",
		"concentration_difficulty",
		"low_mood",
		"health_issues",
		"loneliness",
		"workload_overwhelm",
		"peer_competition",
		"relationship_stress",
		"professor_difficulties",
		"unpleasant_environment",
		"no_relaxation_time",
		"home_environment_issues",
		"low_academic_confidence",
		"low_subject_confidence",
		"activity_conflict",
		"regular_class_attendance",
		"weight_change",
		"stress_type",
		"anxiety_level",
		"self_esteem",
		"mental_health_history",
		"depression",
		"headache",
		"blood_pressure",
		"sleep_quality",
		"breathing_problem",
		"noise_level",
		"living_conditions",
		"safety",
		"basic_needs",
		"academic_performance",
		"study_load",
		"teacher_student_relationship",
		"future_career_concerns",
		"social_support",
		"peer_pressure",
		"extracurricular_activities",
		"bullying",
		"stress_level",
	}
}

// FeatureColumns returns the psychometric columns used as classifier
// features, matching the stress-level dataset minus the label.
func FeatureColumns() []string {
	return []string{
		"anxiety_level",
		"self_esteem",
		"mental_health_history",
		"depression",
		"headache",
		"blood_pressure",
		"sleep_quality",
		"breathing_problem",
		"noise_level",
		"living_conditions",
		"safety",
		"basic_needs",
		"academic_performance",
		"study_load",
		"teacher_student_relationship",
		"future_career_concerns",
		"social_support",
		"peer_pressure",
		"extracurricular_activities",
		"bullying",
	}
}

// KnownColumn reports whether name is part of the canonical merged schema.
func KnownColumn(name string) bool {
	for _, c := range Columns() {
		if c == name {
			return true
		}
	}
	return false
}

// CopyValues returns the record's values in Columns() order, suitable for
// bulk-load sources.
func (r *StressRecord) CopyValues() []any {
	return []any{
		r.Gender,
		r.Age,
		r.ExperiencedStress,
		r.RapidHeartbeat,
		r.AnxietyTension,
		r.SleepProblems,
		r.Headaches,
		r.Irritability,
		r.ConcentrationDifficulty,
		r.LowMood,
		r.HealthIssues,
		r.Loneliness,
		r.WorkloadOverwhelm,
		r.PeerCompetition,
		r.RelationshipStress,
		r.ProfessorDifficulties,
		r.UnpleasantEnvironment,
		r.NoRelaxationTime,
		r.HomeEnvironmentIssues,
		r.LowAcademicConfidence,
		r.LowSubjectConfidence,
		r.ActivityConflict,
		r.RegularClassAttendance,
		r.WeightChange,
		r.StressType,
		r.AnxietyLevel,
		r.SelfEsteem,
		r.MentalHealthHistory,
		r.Depression,
		r.Headache,
		r.BloodPressure,
		r.SleepQuality,
		r.BreathingProblem,
		r.NoiseLevel,
		r.LivingConditions,
		r.Safety,
		r.BasicNeeds,
		r.AcademicPerformance,
		r.StudyLoad,
		r.TeacherStudentRelationship,
		r.FutureCareerConcerns,
		r.SocialSupport,
		r.PeerPressure,
		r.ExtracurricularActivities,
		r.Bullying,
		r.StressLevel,
	}
}

// FromFrame binds a canonical merged frame to typed records. Every
// canonical column must be present with the expected type and no nulls.
func FromFrame(f *frame.Frame) ([]StressRecord, error) {
	ints := make(map[string][]int64, len(Columns())-1)
	for _, name := range Columns() {
		if name == StressTypeColumn {
			continue
		}
		col, err := f.Ints(name)
		if err != nil {
			return nil, fmt.Errorf("bind records: %w", err)
		}
		ints[name] = col
	}
	stressType, err := f.Strings(StressTypeColumn)
	if err != nil {
		return nil, fmt.Errorf("bind records: %w", err)
	}

	recs := make([]StressRecord, f.NumRows())
	for i := range recs {
		recs[i] = StressRecord{
			Gender:                  ints["gender"][i],
			Age:                     ints["age"][i],
			ExperiencedStress:       ints["experienced_stress"][i],
			RapidHeartbeat:          ints["rapid_heartbeat"][i],
			AnxietyTension:          ints["anxiety_tension"][i],
			SleepProblems:           ints["sleep_problems"][i],
			Headaches:               ints["headaches"][i],
			Irritability:            ints["irritability"][i],
			ConcentrationDifficulty: ints["concentration_difficulty"][i],
			LowMood:                 ints["low_mood"][i],
			HealthIssues:            ints["health_issues"][i],
			Loneliness:              ints["loneliness"][i],
			WorkloadOverwhelm:       ints["workload_overwhelm"][i],
			PeerCompetition:         ints["peer_competition"][i],
			RelationshipStress:      ints["relationship_stress"][i],
			ProfessorDifficulties:   ints["professor_difficulties"][i],
			UnpleasantEnvironment:   ints["unpleasant_environment"][i],
			NoRelaxationTime:        ints["no_relaxation_time"][i],
			HomeEnvironmentIssues:   ints["home_environment_issues"][i],
			LowAcademicConfidence:   ints["low_academic_confidence"][i],
			LowSubjectConfidence:    ints["low_subject_confidence"][i],
			ActivityConflict:        ints["activity_conflict"][i],
			RegularClassAttendance:  ints["regular_class_attendance"][i],
			WeightChange:            ints["weight_change"][i],
			StressType:              stressType[i],

			AnxietyLevel:               ints["anxiety_level"][i],
			SelfEsteem:                 ints["self_esteem"][i],
			MentalHealthHistory:        ints["mental_health_history"][i],
			Depression:                 ints["depression"][i],
			Headache:                   ints["headache"][i],
			BloodPressure:              ints["blood_pressure"][i],
			SleepQuality:               ints["sleep_quality"][i],
			BreathingProblem:           ints["breathing_problem"][i],
			NoiseLevel:                 ints["noise_level"][i],
			LivingConditions:           ints["living_conditions"][i],
			Safety:                     ints["safety"][i],
			BasicNeeds:                 ints["basic_needs"][i],
			AcademicPerformance:        ints["academic_performance"][i],
			StudyLoad:                  ints["study_load"][i],
			TeacherStudentRelationship: ints["teacher_student_relationship"][i],
			FutureCareerConcerns:       ints["future_career_concerns"][i],
			SocialSupport:              ints["social_support"][i],
			PeerPressure:               ints["peer_pressure"][i],
			ExtracurricularActivities:  ints["extracurricular_activities"][i],
			Bullying:                   ints["bullying"][i],
			StressLevel:                ints["stress_level"][i],
		}
	}
	return recs, nil
}
