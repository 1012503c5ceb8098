package feedback

// Paraphrase pools for each feedback category. One template is drawn at
// random per active category so repeated reports don't read identically.

var paceTemplates = map[string][]string{
	"too_fast": {
		"Your speaking pace is quite fast at {wpm} words per minute. Try slowing down to appear more confident and allow your interviewer to process your responses more easily.",
		"You're speaking at {wpm} words per minute, which is on the faster side. Taking a few strategic pauses can help you control your pace and sound more authoritative.",
		"I noticed you're speaking quickly ({wpm} wpm). Remember that speaking slowly and deliberately conveys confidence and expertise.",
	},
	"too_slow": {
		"Your speaking pace is {wpm} words per minute, which is a bit measured. Try to be more concise and maintain good energy in your responses.",
		"You're speaking at {wpm} words per minute. While thoughtfulness is good, try to be a bit more direct to keep the interviewer engaged.",
		"Your pace is somewhat slow at {wpm} wpm. For interviews, aim for a moderate pace that shows both thoughtfulness and energy.",
	},
	"good": {
		"Your speaking pace is excellent at {wpm} words per minute - clear and easy to follow.",
		"Great job maintaining an ideal speaking pace of {wpm} words per minute. This makes your answers very digestible.",
		"You have a well-balanced speaking rate of {wpm} wpm, which sounds natural and professional.",
	},
}

var fillerWordTemplates = map[string][]string{
	"high": {
		"I noticed {count} filler words like \"{examples}\" in your response. Try to replace these with strategic pauses instead.",
		"Your answer contained {count} fillers such as \"{examples}\". These can make you sound less confident. Try pausing silently when you need a moment to think.",
		"There were {count} filler words (\"{examples}\") in your response. Reducing these will make your communication sound more polished and confident.",
	},
	"medium": {
		"You used a few filler words ({count}) like \"{examples}\". Being aware of them is the first step to reducing them.",
		"I detected {count} fillers such as \"{examples}\". For a more polished interview presence, try to minimize these.",
		"Your response had {count} filler expressions like \"{examples}\". Practice pausing instead of using these fillers.",
	},
	"low": {
		"Great job keeping filler words to a minimum with just {count} instances.",
		"You used very few filler words ({count}), which makes your response sound confident and prepared.",
		"Excellent control of your speech with only {count} filler words - this shows great preparation.",
	},
	"none": {
		"Fantastic job avoiding filler words completely in your response!",
		"Your answer was completely free of filler words, making it clean and professional.",
		"Impressive communication skills - no filler words detected in your response.",
	},
}

var emotionTemplates = map[string][]string{
	"anxious": {
		"You're coming across as somewhat anxious. Remember to take deep breaths before answering. Interviewers expect some nervousness.",
		"I'm detecting some anxiety in your tone. Try the 4-7-8 breathing technique before your next response (inhale for 4, hold for 7, exhale for 8).",
		"There's a hint of nervousness in your voice. Speaking slightly more slowly can help you appear more confident.",
	},
	"nervous": {
		"I can hear some nervousness in your tone. Remember that interviewers expect candidates to be a bit nervous - it's completely normal.",
		"You sound a bit nervous, which is completely understandable. Try speaking at a slightly lower pitch to convey more confidence.",
		"Your voice indicates some nervousness. Try grounding yourself by feeling your feet firmly on the floor as you speak.",
	},
	"confused": {
		"You seem a bit uncertain about this topic. It's perfectly okay to ask for clarification if you need it.",
		"Your response suggests some confusion. In an interview, it's better to ask for clarification than to guess at what the interviewer is asking.",
		"I'm detecting some uncertainty. Remember that saying 'I'd need to research that further' is better than giving a confused answer.",
	},
	"uncertain": {
		"You're using language that sounds uncertain (maybe, perhaps, I think). Try making more definitive statements when discussing your experience.",
		"Your tone suggests some hesitation. For areas where you have expertise, use more confident language.",
		"I notice some tentative language in your response. Try replacing phrases like 'I think' with 'I believe' or simply stating facts directly.",
	},
	"confident": {
		"You sound confident and self-assured - excellent job projecting expertise.",
		"Great job conveying confidence in your response. This leaves a positive impression on interviewers.",
		"Your confident tone enhances the credibility of your answer. Well done!",
	},
	"happy": {
		"Your enthusiasm comes through nicely in your response. This positive energy is great for interviews.",
		"I can hear the genuine interest in your voice. Showing passion for the topic is always a plus in interviews.",
		"The positive tone in your response shows your engagement with the topic - interviewers appreciate this enthusiasm.",
	},
	"neutral": {
		"Your tone is professional and measured. For some questions, adding a bit more enthusiasm could be beneficial.",
		"You have a calm, neutral tone. This works well for many interview questions, though varying your tone can help emphasize key points.",
		"Your response has a balanced, professional tone. This works well, though don't be afraid to show enthusiasm where appropriate.",
	},
}

var pauseTemplates = map[string][]string{
	"too_few": {
		"Try incorporating more strategic pauses in your responses. They give the interviewer time to process your points and make you appear thoughtful.",
		"Your answer could benefit from a few well-placed pauses. Pauses aren't awkward - they show you're thinking carefully.",
		"Consider adding more brief pauses between key points. This gives weight to your important statements and helps the interviewer follow along.",
	},
	"good": {
		"Great use of pauses to emphasize your key points.",
		"You're using pauses effectively to structure your response. This makes your answer easy to follow.",
		"Excellent pacing with well-timed pauses that give weight to your main points.",
	},
}

var linguisticPatternTemplates = map[string][]string{
	"hedging": {
		"Try to minimize hedging phrases like \"sort of,\" \"kind of,\" or \"I guess.\" Be more direct and assertive in your claims.",
		"I noticed some hedging language that can undermine your expertise. Replace tentative phrases with more definitive statements.",
		"Consider removing qualifying language like \"maybe\" or \"possibly\" when discussing your achievements or expertise.",
	},
	"passive_voice": {
		"Using active voice rather than passive voice makes your achievements sound more impactful. Instead of \"The project was completed by me,\" say \"I completed the project.\"",
		"Try replacing passive constructions with active ones to highlight your direct involvement and leadership.",
		"Active voice tends to sound more confident in interviews. Focus on statements where you are the subject taking action.",
	},
}
