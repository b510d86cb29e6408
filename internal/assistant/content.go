package assistant

var jokes = []string{
	"Why did the AI go to therapy? It had too many deep learning issues.",
	"I'd tell you a UDP joke, but you might not get it.",
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"I'm not procrastinating. I'm doing side quests.",
	"Why did the developer go broke? Because he used up all his cache.",
	"My code works, but I don't know why. That's the real mystery.",
	"I told my computer I needed a break. It gave me a KitKat error.",
	"Debugging is like being a detective in a crime movie where you're also the murderer.",
}

var quotes = []string{
	"\"The obstacle is the way.\" – Marcus Aurelius. Master resistance, become unstoppable.",
	"\"Discipline equals freedom.\" – Jocko Willink. Structure creates possibility.",
	"\"We are what we repeatedly do. Excellence, then, is not an act, but a habit.\" – Aristotle",
	"\"He who has a why to live can bear almost any how.\" – Nietzsche",
	"\"The best time to plant a tree was 20 years ago. The second best time is now.\" – Chinese Proverb",
	"\"Do not pray for an easy life, pray for the strength to endure a difficult one.\" – Bruce Lee",
	"\"The only way to do great work is to love what you do.\" – Steve Jobs",
	"\"In the midst of chaos, there is also opportunity.\" – Sun Tzu",
}

var generalResponses = []string{
	"I'm here to help. Could you be more specific?",
	"Interesting. How may I assist with that?",
	"Noted. What would you like me to do?",
	"I'm at your service. What's the task?",
}

var obsceneKeywords = []string{
	"porn", "pornographic", "xxx", "nude", "naked", "sex", "sexual",
	"erotic", "nsfw", "adult content", "explicit",
}

// motivationalKeywords earn a reminder a quote instead of "Anything else?".
var motivationalKeywords = []string{"gym", "workout", "exercise", "run", "fitness", "training"}

const (
	refusal = "I am sorry. I cannot be of help."

	jokeSuffix  = " Anything else I can assist with?"
	quoteSuffix = "\n\nShall we put this wisdom into action today?"

	askReminder  = "I'd be delighted to set a reminder. Could you specify what and when?"
	askTranslate = "I'd be happy to translate. Please specify the text and target language (e.g., 'Translate Hello to Tamil')."
	askCall      = "Who would you like me to call?"
	askVideo     = "Which video would you like to watch?"
	askSong      = "Which song would you like to hear?"
)
