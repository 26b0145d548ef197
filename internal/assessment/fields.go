package assessment

// 필드별 기본값과 허용 범위
const (
	MinAge = 1
	MaxAge = 120

	MinLevel     = 0
	MaxLevel     = 10
	DefaultLevel = 5

	DefaultSmoke         = "No"
	DefaultAlcohol       = "None"
	DefaultMentalSupport = "No"

	noneCondition = "none"
)

// Canonical enumeration values.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	Yes = "Yes"
	No  = "No"

	AlcoholNone         = "None"
	AlcoholOccasionally = "Occasionally"
	AlcoholRegularly    = "Regularly"

	ExerciseNever    = "Never"
	ExerciseLight    = "1-2 times"
	ExerciseModerate = "3-5 times"
	ExerciseDaily    = "Daily"

	RelaxNever     = "Never"
	RelaxRarely    = "Rarely"
	RelaxSometimes = "Sometimes"
	RelaxOften     = "Often"

	ScreenLow    = "<2h"
	ScreenMedium = "2-6h"
	ScreenHigh   = ">6h"
)

// enum maps a lower-cased spelling to its canonical value.
type enum map[string]string

func newEnum(values ...string) enum {
	e := make(enum, len(values))
	for _, v := range values {
		e[lower(v)] = v
	}
	return e
}

func (e enum) with(alias, canonical string) enum {
	e[lower(alias)] = canonical
	return e
}

var (
	genderValues     = newEnum(GenderMale, GenderFemale, GenderOther)
	yesNoValues      = newEnum(Yes, No)
	alcoholValues    = newEnum(AlcoholNone, AlcoholOccasionally, AlcoholRegularly)
	relaxationValues = newEnum(RelaxNever, RelaxRarely, RelaxSometimes, RelaxOften)

	exerciseValues = newEnum(ExerciseNever, ExerciseLight, ExerciseModerate, ExerciseDaily).
			with("1-2", ExerciseLight).
			with("3-5", ExerciseModerate)

	screenTimeValues = newEnum(ScreenLow, ScreenMedium, ScreenHigh).
				with("Less than 2 hours", ScreenLow).
				with("2-6 hours", ScreenMedium).
				with("More than 6 hours", ScreenHigh)
)
