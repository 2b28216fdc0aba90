// Package main seeds the Reseña database with a sample Spanish-language
// catalog and randomized reviews, useful for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/resenia/resenia-server/internal/lexicon"
	"github.com/resenia/resenia-server/internal/logger"
	"github.com/resenia/resenia-server/internal/service"
	"github.com/resenia/resenia-server/internal/store"
	"github.com/resenia/resenia-server/internal/vectorspace"
)

type seedBook struct {
	title       string
	author      string
	description string
}

var books = []seedBook{
	{"Harry Potter y la piedra filosofal", "J.K. Rowling", "Un niño descubre que es mago."},
	{"El Hobbit", "J.R.R. Tolkien", "La aventura inesperada de Bilbo Bolsón."},
	{"El Señor de los Anillos: La Comunidad del Anillo", "J.R.R. Tolkien", "El viaje para destruir el Anillo Único."},
	{"Las Crónicas de Narnia", "C.S. Lewis", "Un mundo mágico descubierto desde un ropero."},
	{"Percy Jackson y el ladrón del rayo", "Rick Riordan", "Percy descubre que es hijo de un dios griego."},
	{"Mistborn: El Imperio Final", "Brandon Sanderson", "Un imperio gobernado por un tirano inmortal."},
	{"El Nombre del Viento", "Patrick Rothfuss", "Kvothe cuenta su historia."},
	{"Juego de tronos", "George R.R. Martin", "Reyes, traiciones y guerras en Poniente."},
	{"Dune", "Frank Herbert", "Un planeta desértico lleno de conspiraciones."},
	{"Fundación", "Isaac Asimov", "Una ciencia que predice el futuro."},
	{"Neuromante", "William Gibson", "El origen del ciberpunk."},
	{"1984", "George Orwell", "Distopía sobre vigilancia total."},
	{"Fahrenheit 451", "Ray Bradbury", "Bomberos que queman libros."},
	{"It", "Stephen King", "Un ente maligno aterroriza a un pueblo."},
	{"El Resplandor", "Stephen King", "Un hotel embrujado domina la mente de Jack Torrance."},
	{"Drácula", "Bram Stoker", "El legendario vampiro."},
	{"Frankenstein", "Mary Shelley", "Un científico crea vida prohibida."},
	{"Orgullo y prejuicio", "Jane Austen", "Elizabeth Bennet navega la sociedad inglesa."},
	{"Bajo la misma estrella", "John Green", "Dos jóvenes con cáncer encuentran el amor."},
	{"Don Quijote de la Mancha", "Miguel de Cervantes", "El mayor clásico español."},
	{"Crimen y castigo", "Dostoyevski", "Un asesinato y su impacto moral."},
	{"La Odisea", "Homero", "La aventura de Odiseo."},
	{"Hamlet", "Shakespeare", "Venganza y locura."},
	{"Romeo y Julieta", "Shakespeare", "El amor prohibido más famoso."},
}

var positiveReviews = []string{
	"Me encantó, la historia fue emocionante.",
	"Un libro increíble, muy bien escrito.",
	"Disfruté cada capítulo, totalmente recomendado.",
	"El desarrollo de personajes fue excelente.",
	"Una lectura muy agradable y llena de emoción.",
	"Me atrapó desde el inicio, maravilloso.",
}

var negativeReviews = []string{
	"La historia se me hizo aburrida y muy lenta.",
	"No cumplió mis expectativas.",
	"Los personajes no me parecieron interesantes.",
	"Demasiado predecible y sin emoción.",
	"No lo volvería a leer.",
	"Muy mal ritmo narrativo.",
}

var neutralReviews = []string{
	"Es un libro decente, nada especial.",
	"Tuvo partes buenas y malas.",
	"Una experiencia normal, no destaca mucho.",
	"Interesante pero no memorable.",
	"Un libro promedio, aceptable.",
}

var usernames = []string{
	"juan23", "lectora_ana", "pedro.g", "sofia_reader",
	"mario88", "camila.l", "booklover", "andres_17",
}

func main() {
	dataPath := flag.String("data-path", "", "Base path for data storage (same as the server's)")
	reviewsPerBook := flag.Int("reviews-per-book", 5, "Reviews to generate per book")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "seed: -data-path is required")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: logger.ParseLevel("info")})

	st, err := store.New(filepath.Join(*dataPath, "db"), log.Logger)
	if err != nil {
		log.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	tokenizer := vectorspace.NewTokenizer(vectorspace.SpanishStopWords())
	classifier := lexicon.NewClassifier(lexicon.Spanish())
	bookService := service.NewBookService(st, tokenizer, log.Logger)
	reviewService := service.NewReviewService(st, classifier, log.Logger)

	ctx := context.Background()
	pools := [][]string{positiveReviews, negativeReviews, neutralReviews}

	var created, reviewed int
	for _, b := range books {
		book, err := bookService.CreateBook(ctx, service.CreateBookRequest{
			Title:       b.title,
			Author:      b.author,
			Description: b.description,
		})
		if err != nil {
			log.Error("Failed to create book", "title", b.title, "error", err)
			os.Exit(1)
		}
		created++

		for range *reviewsPerBook {
			pool := pools[rand.Intn(len(pools))]
			_, err := reviewService.CreateReview(ctx, book.ID, service.CreateReviewRequest{
				Username: usernames[rand.Intn(len(usernames))],
				Text:     pool[rand.Intn(len(pool))],
			})
			if err != nil {
				log.Error("Failed to create review", "book_id", book.ID, "error", err)
				os.Exit(1)
			}
			reviewed++
		}
	}

	log.Info("Seed complete", "books", created, "reviews", reviewed)
}
