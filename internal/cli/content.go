package cli

import (
	"log/slog"

	"quizdesk/internal/config"
	"quizdesk/internal/content"
)

// loadedContent is the question and answer data named by a config.
type loadedContent struct {
	QuestionSource string
	Format         content.Format
	Questions      content.Questions
	Answers        content.AnswerKey
}

// loadContent locates and parses the question source and the answer key.
func loadContent(cfg config.Config, logger *slog.Logger) (loadedContent, error) {
	source, err := content.FindQuestionSource(cfg.Questions)
	if err != nil {
		return loadedContent{}, err
	}
	questions, err := content.LoadQuestions(source)
	if err != nil {
		return loadedContent{}, err
	}
	answers, err := content.LoadAnswers(cfg.Answers)
	if err != nil {
		return loadedContent{}, err
	}
	loaded := loadedContent{
		QuestionSource: source,
		Format:         content.DetectFormat(source),
		Questions:      questions,
		Answers:        answers,
	}
	logger.Info("content loaded",
		"questions_path", source,
		"format", loaded.Format.String(),
		"questions", len(questions),
		"answers_path", cfg.Answers,
		"answers", len(answers),
	)
	return loaded, nil
}
