package quiz

import "github.com/statforge/habitquest/model"

// questionSets registers the questionnaire for each stat.
var questionSets = map[model.Stat]QuestionSet{
	model.StatStrength: {
		Part1: Calibration{
			Text:        "Select the amount you can military press (lift directly over your head):",
			Description: "A military press is lifting something directly over your head. You can military press about 2/3 of what you can bench press.",
			Options: []Option{
				{Value: 8, Text: "10 lbs (4.5 kgs) - Bench: 15 lbs (6.8 kgs)"},
				{Value: 9, Text: "25 lbs (11.4 kgs) - Bench: 38 lbs (17.3 kgs)"},
				{Value: 10, Text: "55 lbs (25.0 kgs) - Bench: 83 lbs (37.7 kgs)"},
				{Value: 11, Text: "90 lbs (40.9 kgs) - Bench: 135 lbs (61.3 kgs)"},
				{Value: 12, Text: "115 lbs (52.2 kgs) - Bench: 173 lbs (78.5 kgs)"},
				{Value: 13, Text: "140 lbs (63.6 kgs) - Bench: 210 lbs (95.3 kgs)"},
				{Value: 14, Text: "170 lbs (77.2 kgs) - Bench: 255 lbs (115.8 kgs)"},
				{Value: 15, Text: "195 lbs (88.5 kgs) - Bench: 293 lbs (133.0 kgs)"},
				{Value: 16, Text: "220 lbs (99.9 kgs) - Bench: 330 lbs (149.8 kgs)"},
				{Value: 17, Text: "255 lbs (115.8 kgs) - Bench: 383 lbs (173.9 kgs)"},
				{Value: 18, Text: "330 lbs (149.8 kgs) - Bench: 495 lbs (224.7 kgs)"},
				{Value: 19, Text: "480 lbs (217.9 kgs) - Bench: 720 lbs (326.9 kgs)"},
			},
		},
		Part2: []Question{
			{Text: "Can you do at least five push ups or otherwise lift your weight five times using only your upper body?", Value: 1},
			{Text: "Can you do at least twenty push ups or lift your weight twenty times using your upper body?", Value: 1},
			{Text: "Can you climb a rope hand over hand at least twice your height?", Value: 1},
			{Text: "Can you do at least five pronated (palms facing outwards) pull ups?", Value: 1},
			{Text: "Can you do at least ten pronated one arm pull ups on each arm?", Value: 2},
			{Text: "Do you perform any sort of strength exercise more than twice a week?", Value: 1},
			{Text: "Can you do ten deep knee bends?", Value: 1},
			{Text: "Have you performed a feat of strength to show off?", Value: 1},
			{Text: "Have you performed a media-worthy feat of strength?", Value: 2},
			{Text: "Can you kick a football 100 yards or throw one 50 meters?", Value: 1},
			{Text: "Have you ever popped a sports ball by striking it barehanded?", Value: 1},
			{Text: "Have you received compensation for athletic prowess?", Value: 1},
		},
	},
	model.StatDexterity: {
		Part1: Calibration{
			Text: "Select your general coordination level:",
			Options: []Option{
				{Value: 18, Text: "Professional athlete or performer"},
				{Value: 16, Text: "Advanced sports/martial arts practitioner"},
				{Value: 14, Text: "Regular sports participant"},
				{Value: 12, Text: "Average coordination"},
				{Value: 10, Text: "Slightly clumsy"},
				{Value: 8, Text: "Very clumsy"},
			},
		},
		Part2: []Question{
			{Text: "Do you often stub your toes/trip while walking?", Value: -1},
			{Text: "Do you find it hard to catch objects thrown at you?", Value: -1},
			{Text: "Can you juggle three or more objects?", Value: 2},
			{Text: "Can you perform sleight of hand tricks?", Value: 2},
			{Text: "Do you play sports requiring hand-eye coordination?", Value: 2},
			{Text: "Can you navigate crowded areas without slowing?", Value: 1},
			{Text: "Can you drive a vehicle skillfully?", Value: 1},
			{Text: "Do you practice martial arts or gymnastics?", Value: 2},
			{Text: "Are you good at video games requiring reflexes?", Value: 1},
			{Text: "Can you dance well?", Value: 1},
		},
	},
	model.StatConstitution: {
		Part1: Calibration{
			Text: "Select your general health level:",
			Options: []Option{
				{Value: 18, Text: "Exceptional health, never get sick"},
				{Value: 16, Text: "Very healthy, rarely get sick"},
				{Value: 14, Text: "Above average health"},
				{Value: 12, Text: "Average health"},
				{Value: 10, Text: "Below average health"},
				{Value: 8, Text: "Poor health"},
			},
		},
		Part2: []Question{
			{Text: "Do you get sick at least once a season?", Value: -2},
			{Text: "Do you have any allergies?", Value: -1},
			{Text: "Can you run a mile without stopping?", Value: 1},
			{Text: "Have you completed a marathon?", Value: 3},
			{Text: "Can you perform acts of extreme endurance?", Value: 4},
			{Text: "Are you sensitive to pain?", Value: -1},
			{Text: "Do you have perfect health (excluding injuries)?", Value: 3},
			{Text: "Are you easily winded?", Value: -1},
			{Text: "Can you handle extreme temperatures well?", Value: 2},
			{Text: "Do you recover quickly from injuries?", Value: 2},
		},
	},
	model.StatIntelligence: {
		Part1: Calibration{
			Text: "Select your IQ or highest degree (whichever gives the higher score):",
			Options: []Option{
				{Value: 19, Text: "A doctorate (PhD) / IQ 131 or higher"},
				{Value: 16, Text: "A Masters Degree / IQ 121 to 130"},
				{Value: 14, Text: "An undergraduate or apprenticeship / IQ 111 to 120"},
				{Value: 12, Text: "HighSchool / IQ 101 to 110"},
				{Value: 10, Text: "Middle School(Grades 6-8) / IQ 91 to 100"},
				{Value: 8, Text: "Grammar School(Grades 1-5) / IQ 81 to 90"},
				{Value: 6, Text: "No Schooling / IQ 80 or lower"},
			},
		},
		Part2: []Question{
			{Text: "Are you literate in at least one language?", Value: 2},
			{Text: "Are you conversant in at least two natural languages?", Value: 1},
			{Text: "Are you literate in at least two natural languages?", Value: 1},
			{Text: "Are you conversant in three or more natural languages?", Value: 2},
			{Text: "Are you literate in three or more natural languages?", Value: 2},
			{Text: "Can you operate most devices without asking for help after reading instructions?", Value: 1},
			{Text: "Can you operate most devices without instructions?", Value: 2},
			{Text: "Can you add two three-digit numbers in your head?", Value: 1},
			{Text: "Are you considered an expert at a puzzle game?", Value: 2},
			{Text: "Do you have a reputation for being smart?", Value: 1},
			{Text: "Can you often predict how movies or books will end?", Value: 1},
			{Text: "Do you need instructions repeated often?", Value: -1},
		},
	},
	model.StatWisdom: {
		Part1: Calibration{
			Text: "Select your general wisdom level:",
			Options: []Option{
				{Value: 18, Text: "Sage-like wisdom and intuition"},
				{Value: 16, Text: "Very wise and perceptive"},
				{Value: 14, Text: "Above average wisdom"},
				{Value: 12, Text: "Average wisdom"},
				{Value: 10, Text: "Below average wisdom"},
				{Value: 8, Text: "Poor judgment"},
			},
		},
		Part2: []Question{
			{Text: "Do you make impulsive purchases you regret?", Value: -1},
			{Text: "Can you stick to a schedule or regimen?", Value: 1},
			{Text: "Do you gamble often?", Value: -1},
			{Text: "Can you hold your temper under pressure?", Value: 1},
			{Text: "Do you have good common sense?", Value: 2},
			{Text: "Do you trust your intuition?", Value: 1},
			{Text: "Are your hunches usually correct?", Value: 2},
			{Text: "Do you plan for the long-term future?", Value: 2},
			{Text: "Can you read people well?", Value: 1},
			{Text: "Do you learn from past mistakes?", Value: 1},
		},
	},
	model.StatCharisma: {
		Part1: Calibration{
			Text: "Select your general social ability:",
			Options: []Option{
				{Value: 18, Text: "Natural leader and influencer"},
				{Value: 16, Text: "Very charismatic and persuasive"},
				{Value: 14, Text: "Above average social skills"},
				{Value: 12, Text: "Average social skills"},
				{Value: 10, Text: "Below average social skills"},
				{Value: 8, Text: "Poor social skills"},
			},
		},
		Part2: []Question{
			{Text: "Do you have fewer than 3 close confidants?", Value: -1},
			{Text: "Can you convince others to see your point of view?", Value: 1},
			{Text: "Do people often confide in you?", Value: 1},
			{Text: "Do people seek your advice?", Value: 1},
			{Text: "Can you command attention in a group?", Value: 2},
			{Text: "Are you often invited to social events?", Value: 1},
			{Text: "Do you have a reputation for being charming?", Value: 2},
			{Text: "Can you speak well in public?", Value: 1},
			{Text: "Are you good at networking?", Value: 1},
			{Text: "Can you defuse tense situations?", Value: 2},
		},
	},
}
