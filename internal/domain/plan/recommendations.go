package plan

import "github.com/okian/tripace/internal/domain/model"

// recommendations is indexed by discipline then tier. Lists are never
// mutated; Recommendations hands out copies.
var recommendations = map[model.Discipline]map[model.Tier][]string{
	model.Swim: {
		model.Poor: {
			"Fundamentals: rebuild breaststroke or freestyle basics with three technique sessions a week",
			"Water comfort: open every session with 10 minutes of water walking and floating",
			"Breathing: practise bilateral breathing, one breath every three strokes",
			"Short intervals: 8 x 25m with 30s rest, focused purely on form",
		},
		model.Average: {
			"Technique: work on a high-elbow catch and body rotation in two technique sessions a week",
			"Endurance: extend continuous swims from 200m up to 500m",
			"Speed: 6 x 50m intervals holding under 2:00/100m",
			"Open water: one outdoor swim a month to get used to race conditions",
		},
		model.Good: {
			"Speed: 6 x 100m hard intervals to break through your pace plateau",
			"Technique: refine hand entry angle and stroke efficiency",
			"Endurance: build to 1000m continuous",
			"Race simulation: rehearse mass starts and turns around buoys",
		},
		model.Excellent: {
			"Elite work: follow a structured squad programme to sharpen race form",
			"Strength: add upper-body and core strength sessions",
			"Tactics: practise race strategy and pacing control",
			"Recovery: prioritise stretching and massage to avoid overtraining",
		},
	},
	model.Bike: {
		model.Poor: {
			"Base riding: two flat rides a week of 30 to 45 minutes",
			"Bike fit: learn to set saddle height and handlebar position",
			"Gearing: get comfortable shifting both front and rear derailleurs",
			"Safety: learn hand signals and basic road rules",
		},
		model.Average: {
			"Endurance: a 60 to 90 minute long ride every weekend",
			"Climbing: find short gentle hills and ride repeats",
			"Cadence: hold 80 to 90 rpm",
			"Strength: trainer sessions to build leg power",
		},
		model.Good: {
			"Speed: intervals to lift your average speed to 30 km/h",
			"Climbing: take on longer and steeper climbs",
			"Handling: practise descending and cornering",
			"Equipment: consider upgrading the bike and components",
		},
		model.Excellent: {
			"Racing: enter amateur races to build race experience",
			"Power: train with a power meter",
			"Tactics: learn group riding and breakaway skills",
			"Maintenance: balance load and recovery to hold form",
		},
	},
	model.Run: {
		model.Poor: {
			"Start easy: begin with brisk walking and progress to jogging",
			"Form: learn correct running posture to avoid injury",
			"Progression: add no more than 10% volume a week",
			"Gear: choose suitable running shoes and clothing",
		},
		model.Average: {
			"Aerobic base: three 30 to 45 minute easy runs a week",
			"Intervals: start with 400m repeats",
			"Core: strengthen the abdomen and lower body",
			"Mobility: stretch thoroughly after every run",
		},
		model.Good: {
			"Speed: 5 x 1km intervals at 5:00/km",
			"Long runs: 10 to 15km every weekend",
			"Hills: practise uphill and downhill running",
			"Pacing: learn to hold target pace over different distances",
		},
		model.Excellent: {
			"Marathon: prepare for a half or full marathon",
			"Intervals: 800m or 1000m repeats at high intensity",
			"Monitoring: use a heart-rate strap to control intensity",
			"Fuelling: practise your in-race nutrition strategy",
		},
	},
}

// Recommendations returns the advice list for a discipline at a tier. An
// unknown tier falls back to the average list; an unknown discipline yields
// nil.
func Recommendations(d model.Discipline, t model.Tier) []string {
	byTier, ok := recommendations[d]
	if !ok {
		return nil
	}
	list, ok := byTier[t]
	if !ok {
		list = byTier[model.Average]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
