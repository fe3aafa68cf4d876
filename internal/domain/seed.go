package domain

import "time"

// SeedCatalog returns the demo catalog used to bootstrap an empty store.
// The ids are explicit so that repeated loads upsert instead of duplicating.
func SeedCatalog() []Movie {
	return []Movie{
		{ID: 1, Title: "Inception", Director: "Christopher Nolan", Description: "A mind-bending thriller", Genre: "Sci-Fi", Date: date(2010, time.July, 16), Location: "IMAX Theater 1", TotalSeats: 200, AvailableSeats: 150, Price: 300},
		{ID: 2, Title: "The Dark Knight", Director: "Christopher Nolan", Description: "Gotham's hero faces a new foe", Genre: "Action", Date: date(2008, time.July, 18), Location: "IMAX Theater 2", TotalSeats: 250, AvailableSeats: 200, Price: 350},
		{ID: 3, Title: "Parasite", Director: "Bong Joon-ho", Description: "A commentary on class and inequality", Genre: "Thriller", Date: date(2019, time.May, 30), Location: "Cineplex 5", TotalSeats: 180, AvailableSeats: 120, Price: 280},
		{ID: 4, Title: "Interstellar", Director: "Christopher Nolan", Description: "A journey beyond our galaxy", Genre: "Sci-Fi", Date: date(2014, time.November, 7), Location: "IMAX Theater 3", TotalSeats: 220, AvailableSeats: 180, Price: 320},
		{ID: 5, Title: "The Godfather", Director: "Francis Ford Coppola", Description: "The story of an Italian-American crime family", Genre: "Crime", Date: date(1972, time.March, 24), Location: "Classic Cinema 1", TotalSeats: 150, AvailableSeats: 100, Price: 250},
		{ID: 6, Title: "Schindler's List", Director: "Steven Spielberg", Description: "A historical drama on the Holocaust", Genre: "Drama", Date: date(1993, time.December, 15), Location: "Historic Theater", TotalSeats: 170, AvailableSeats: 150, Price: 200},
		{ID: 7, Title: "Avengers: Endgame", Director: "Anthony and Joe Russo", Description: "The Avengers assemble for a final battle", Genre: "Action", Date: date(2019, time.April, 26), Location: "IMAX Theater 4", TotalSeats: 300, AvailableSeats: 250, Price: 400},
		{ID: 8, Title: "Joker", Director: "Todd Phillips", Description: "A gritty look into the Joker's origins", Genre: "Crime", Date: date(2019, time.October, 4), Location: "Cineplex 3", TotalSeats: 200, AvailableSeats: 180, Price: 300},
		{ID: 9, Title: "Forrest Gump", Director: "Robert Zemeckis", Description: "The story of a man's extraordinary life journey", Genre: "Drama", Date: date(1994, time.July, 6), Location: "Classic Cinema 2", TotalSeats: 160, AvailableSeats: 140, Price: 220},
		{ID: 10, Title: "The Matrix", Director: "Lana and Lilly Wachowski", Description: "A hacker discovers the truth about reality", Genre: "Sci-Fi", Date: date(1999, time.March, 31), Location: "Cineplex 6", TotalSeats: 210, AvailableSeats: 190, Price: 310},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
