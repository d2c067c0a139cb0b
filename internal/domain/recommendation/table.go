package recommendation

import "github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"

// keywordRule selects a recommendation when any keyword appears in the
// lower-cased input text.
type keywordRule struct {
	name     string
	keywords []string
	rec      entity.Recommendation
}

var positiveHighConfidence = entity.Recommendation{
	Message: "🌟 You're radiating positive energy! This is wonderful to see.",
	Tips: []string{
		"🎵 Listen to your favorite uplifting music",
		"📞 Share this positive energy with a friend",
		"📝 Write down what made you feel good today",
		"🌱 Use this momentum for a creative project",
	},
}

var positiveDefault = entity.Recommendation{
	Message: "😊 You seem to be feeling good! Let's build on these positive vibes.",
	Tips: []string{
		"🚶‍♀️ Take a pleasant walk outside",
		"📖 Read something inspiring",
		"🧘‍♀️ Practice gratitude meditation",
		"💪 Try a fun physical activity",
	},
}

// negativeRules are evaluated in order; the first match wins.
var negativeRules = []keywordRule{
	{
		name:     "anxiety",
		keywords: []string{"anxious", "anxiety", "worried", "stress"},
		rec: entity.Recommendation{
			Message: "😌 I understand you're feeling anxious. Remember, this feeling will pass.",
			Tips: []string{
				"🫁 Try deep breathing exercises (4-7-8 technique)",
				"🧘‍♀️ Practice a 5-minute mindfulness meditation",
				"📱 Use a calming app like Headspace or Calm",
				"☎️ Consider talking to a trusted friend or counselor",
			},
		},
	},
	{
		name:     "sadness",
		keywords: []string{"sad", "depressed", "down", "upset"},
		rec: entity.Recommendation{
			Message: "💙 I hear that you're going through a tough time. Your feelings are valid.",
			Tips: []string{
				"🌅 Try to get some natural sunlight",
				"🎨 Express yourself through art, writing, or music",
				"🏃‍♀️ Light exercise can help boost mood",
				"🤗 Reach out to someone who cares about you",
			},
		},
	},
	{
		name:     "anger",
		keywords: []string{"angry", "mad", "frustrated", "irritated"},
		rec: entity.Recommendation{
			Message: "😤 It sounds like you're feeling frustrated. Let's work on channeling this energy.",
			Tips: []string{
				"💨 Take 10 deep breaths before reacting",
				"🏋️‍♀️ Try physical exercise to release tension",
				"📝 Write down your feelings in a journal",
				"🎯 Focus on what you can control in the situation",
			},
		},
	},
}

var negativeDefault = entity.Recommendation{
	Message: "💭 I sense you might be going through something difficult. Remember, it's okay to not be okay.",
	Tips: []string{
		"🛁 Take a warm bath or shower",
		"📚 Read a comforting book or watch a feel-good movie",
		"🍵 Make yourself a warm drink",
		"💬 Consider talking to a mental health professional",
	},
}

var mixedDefault = entity.Recommendation{
	Message: "🤔 Your feelings seem mixed right now, which is completely normal.",
	Tips: []string{
		"📓 Try journaling to explore your thoughts",
		"🚶‍♀️ Take a mindful walk to clear your head",
		"🎵 Listen to music that resonates with your mood",
		"🧘‍♀️ Try a brief meditation or breathing exercise",
	},
}
