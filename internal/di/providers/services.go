package providers

import (
	"github.com/samber/do/v2"

	"github.com/resenia/resenia-server/internal/auth"
	"github.com/resenia/resenia-server/internal/config"
	"github.com/resenia/resenia-server/internal/lexicon"
	"github.com/resenia/resenia-server/internal/logger"
	"github.com/resenia/resenia-server/internal/recommend"
	"github.com/resenia/resenia-server/internal/service"
	"github.com/resenia/resenia-server/internal/vectorspace"
)

// ProvideTokenizer provides the shared Spanish text tokenizer.
func ProvideTokenizer(i do.Injector) (*vectorspace.Tokenizer, error) {
	return vectorspace.NewTokenizer(vectorspace.SpanishStopWords()), nil
}

// ProvideClassifier provides the Spanish lexicon sentiment classifier.
func ProvideClassifier(i do.Injector) (*lexicon.Classifier, error) {
	return lexicon.NewClassifier(lexicon.Spanish()), nil
}

// ProvideSimilarity provides the TF-IDF similarity recommender.
func ProvideSimilarity(i do.Injector) (*recommend.Similarity, error) {
	cfg := do.MustInvoke[*config.Config](i)
	tokenizer := do.MustInvoke[*vectorspace.Tokenizer](i)

	return recommend.NewSimilarity(tokenizer, cfg.Analysis.SimilarLimit), nil
}

// ProvideSessionService provides the session service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSessionService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	sessionService := do.MustInvoke[*service.SessionService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, sessionService, log.Logger), nil
}

// ProvideBookService provides the book catalog service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenizer := do.MustInvoke[*vectorspace.Tokenizer](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, tokenizer, log.Logger), nil
}

// ProvideReviewService provides the review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	classifier := do.MustInvoke[*lexicon.Classifier](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReviewService(storeHandle.Store, classifier, log.Logger), nil
}

// ProvideQuizService provides the preference quiz service.
func ProvideQuizService(i do.Injector) (*service.QuizService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewQuizService(storeHandle.Store, log.Logger), nil
}

// ProvideRecommendationService provides the recommendation service.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	similarity := do.MustInvoke[*recommend.Similarity](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendationService(storeHandle.Store, similarity, log.Logger), nil
}
