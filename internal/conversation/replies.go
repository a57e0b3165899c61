package conversation

import (
	"fmt"
	"strings"

	"github.com/abhisek/guruji/internal/drill"
)

// Reply text lives here so handlers stay readable and tests can assert
// on fragments. WhatsApp renders *bold* and _italics_.

func replyAskName() string {
	return "What's your name? Just tell me!"
}

func replyWelcomeNew() string {
	return "Hey! I'm Guruji, your strict physics coach.\n\n" +
		"First, what should I call you?"
}

func replyWelcomeBack(name string, pending int) string {
	if pending > 0 {
		return fmt.Sprintf("Welcome back %s!\n\nYou have %d mistakes waiting to be fixed.\n\nReply *GO* to start drilling, or tell me about a new mistake!", name, pending)
	}
	return fmt.Sprintf("Welcome back %s!\n\nTell me about a mistake from your recent test or practice, and I'll make sure you never repeat it!", name)
}

func replyNamed(name string, pending int) string {
	if pending > 0 {
		return fmt.Sprintf("Welcome %s!\n\nYou have %d mistakes waiting to be fixed.\n\nReply *GO* to start drilling, or tell me about a new mistake!", name, pending)
	}
	return fmt.Sprintf("Welcome %s!\n\nI'm Guruji, your strict physics coach.\n\nTell me about a mistake you made in your last test or practice. I'll make sure you never repeat it!", name)
}

func replyMistakeLogged(topic, mistakeType, misconception string) string {
	return fmt.Sprintf("Got it! Logged your mistake:\n\n*Topic:* %s\n*Type:* %s\n*Issue:* %s\n\nI'll drill you on this until it's fixed!\n\nReply *GO* to start practicing now, or tell me another mistake.",
		topic, mistakeType, misconception)
}

func replyNothingToDrill() string {
	return "No mistakes to drill!\n\nTell me about a mistake from your recent test or practice."
}

func replyNoneDueYet(pending int) string {
	return fmt.Sprintf("You have %d mistakes, but none are due for review yet.\n\nThey'll come back on schedule. Meanwhile, tell me about new mistakes!", pending)
}

func replyQuestion(topic, misconception string, q drill.Question) string {
	if misconception == "" {
		misconception = "Fix this mistake!"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*Drilling:* %s\n_%s_\n\n", topic, misconception)
	fmt.Fprintf(&b, "*Question:*\n%s\n\n", q.Text)
	for i, letter := range drill.Letters {
		fmt.Fprintf(&b, "*%s)* %s\n", letter, q.Options[i])
	}
	b.WriteString("\nReply with *A*, *B*, *C*, or *D*")
	return b.String()
}

func replyPickALetter() string {
	return "Please reply with *A*, *B*, *C*, or *D*"
}

func replyCorrect(streak int, mastered bool, pending int) string {
	var b strings.Builder

	b.WriteString("Correct!")
	if mastered {
		b.WriteString(" That mistake is now *mastered*. It won't haunt you again.")
	}
	if streak > 1 {
		fmt.Fprintf(&b, "\n\n*Streak:* %d days", streak)
	}

	if pending > 0 {
		fmt.Fprintf(&b, "\n\n%d more mistakes waiting. Reply *GO* to continue!", pending)
	} else {
		b.WriteString("\n\nAll caught up! Tell me about new mistakes.")
	}
	return b.String()
}

func replyWrongWithHint(attempts int, hint string) string {
	remaining := drill.MaxAttempts - attempts
	var b strings.Builder
	fmt.Fprintf(&b, "Not quite. %d more ", remaining)
	if remaining == 1 {
		b.WriteString("try.")
	} else {
		b.WriteString("tries.")
	}
	if hint != "" {
		fmt.Fprintf(&b, "\n\n*Hint:* %s", hint)
	}
	b.WriteString("\n\nTry again: *A*, *B*, *C*, or *D*")
	return b.String()
}

func replyExhausted(correctOption, solution string) string {
	return fmt.Sprintf("The answer was *%s*.\n\n*Solution:* %s\n\nWe'll revisit this one soon. Reply *GO* to continue.",
		correctOption, solution)
}

func replyStats(name string, streak, longest, total, mastered, pending, questionsToday, correctToday int) string {
	accuracy := 0.0
	if questionsToday > 0 {
		accuracy = float64(correctToday) / float64(questionsToday) * 100
	}
	var b strings.Builder
	fmt.Fprintf(&b, "*%s's Progress*\n\n", name)
	fmt.Fprintf(&b, "*Streak:* %d days (Best: %d)\n\n", streak, longest)
	b.WriteString("*Mistakes:*\n")
	fmt.Fprintf(&b, "  - Total tracked: %d\n", total)
	fmt.Fprintf(&b, "  - Mastered: %d\n", mastered)
	fmt.Fprintf(&b, "  - Pending: %d\n\n", pending)
	b.WriteString("*Today:*\n")
	fmt.Fprintf(&b, "  - Questions: %d\n", questionsToday)
	fmt.Fprintf(&b, "  - Correct: %d\n", correctToday)
	fmt.Fprintf(&b, "  - Accuracy: %.0f%%\n\n", accuracy)
	if pending > 0 {
		fmt.Fprintf(&b, "Reply *GO* to drill your %d pending mistakes!", pending)
	} else {
		b.WriteString("Nothing pending. Tell me about new mistakes!")
	}
	return b.String()
}

func replyHelp() string {
	return "*Guruji Commands*\n\n" +
		"*GO* - Start drilling your mistakes\n" +
		"*STATS* - See your progress & streak\n" +
		"*STOP* - Unsubscribe from messages\n\n" +
		"*To report a mistake:*\n" +
		"Just tell me! Examples:\n" +
		"- 'I confused torque with force'\n" +
		"- 'Made a sign error in kinematics'\n\n" +
		"*To answer a question:*\n" +
		"Reply with A, B, C, or D"
}

func replyStopped() string {
	return "You've been unsubscribed.\n\nI won't send you any more messages.\nReply *START* anytime to resume."
}

func replyResumed() string {
	return "Welcome back!\n\nReply *GO* to start drilling your mistakes!"
}

func replyChitchat(name string, pending int) string {
	if name == "" {
		name = "there"
	}
	if pending > 0 {
		return fmt.Sprintf("Hey %s, let's focus!\n\nYou have %d mistakes waiting.\nReply *GO* to practice, or tell me about a new mistake.", name, pending)
	}
	return fmt.Sprintf("Hey %s! I'm here to fix your physics mistakes.\n\nTell me about a mistake you made recently, and I'll make sure you never repeat it!", name)
}

func replyNoActiveQuestion() string {
	return "No active question. Reply *GO* to start drilling!"
}

func replyDrillUnavailable() string {
	return "I couldn't prepare a question right now. Try again in a minute!"
}

func replyError() string {
	return "Something went wrong on my end. Give me a moment and try again."
}
