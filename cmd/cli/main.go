// Interactive operator console: ingest tournaments from Challonge,
// process ratings, inspect rankings, and maintain player aliases. A
// failure in any action is printed and the menu continues; the loop never
// dies on a bad item.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tournament-elo-api/config"
	"tournament-elo-api/internal/api"
	"tournament-elo-api/internal/challonge"
	"tournament-elo-api/internal/identity"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	client := challonge.NewClient(challonge.ClientConfig{
		APIKey: config.ChallongeAPIKey(),
	})
	module := api.NewModule(config.DB, client)

	console := &console{
		module:   module,
		resolver: identity.NewResolver(config.DB),
		scanner:  bufio.NewScanner(os.Stdin),
	}
	console.run()
}

type console struct {
	module   *api.Module
	resolver identity.Resolver
	scanner  *bufio.Scanner
}

func (c *console) run() {
	for {
		fmt.Println("\nTournament ELO Ranking System")
		fmt.Println("1. Fetch and ingest tournament data")
		fmt.Println("2. Process tournament ratings")
		fmt.Println("3. Display rankings")
		fmt.Println("4. Add player alias")
		fmt.Println("5. Exit")

		choice, ok := c.promptOK("\nEnter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.ingestTournament()
		case "2":
			c.processTournament()
		case "3":
			c.displayRankings()
		case "4":
			c.addAlias()
		case "5":
			fmt.Println("Exiting the application.")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (c *console) prompt(label string) string {
	input, _ := c.promptOK(label)
	return input
}

// promptOK reads one line; ok is false when stdin is closed.
func (c *console) promptOK(label string) (input string, ok bool) {
	fmt.Print(label)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// pickTournament lists the host's tournaments and returns the selected
// one, or nil when the selection was abandoned.
func (c *console) pickTournament() *challonge.Tournament {
	tournaments, err := c.module.IngestService.ListTournaments()
	if err != nil {
		fmt.Printf("Error fetching tournaments: %v\n", err)
		return nil
	}
	if len(tournaments) == 0 {
		fmt.Println("No tournaments available.")
		return nil
	}

	fmt.Println("\nChoose a tournament by entering the corresponding number.")
	for i, t := range tournaments {
		fmt.Printf("%d. Name: %s, Code: %s, Tournament ID: %d\n", i+1, t.Name, t.URL, t.ID)
	}

	input := c.prompt(fmt.Sprintf("Enter a number (1-%d): ", len(tournaments)))
	index, err := strconv.Atoi(input)
	if err != nil || index < 1 || index > len(tournaments) {
		fmt.Printf("Please enter a number between 1 and %d.\n", len(tournaments))
		return nil
	}

	selected := tournaments[index-1]
	fmt.Printf("You have selected: %s\n", selected.Name)
	return &selected
}

func (c *console) ingestTournament() {
	tournament := c.pickTournament()
	if tournament == nil {
		return
	}

	result, err := c.module.IngestService.IngestTournament(tournament.URL)
	if err != nil {
		fmt.Printf("Ingest failed: %v\n", err)
		return
	}

	fmt.Printf("Ingested tournament %d: %d players resolved (%d new), %d matches inserted, %d duplicates, %d skipped\n",
		result.TournamentID, result.PlayersResolved, result.PlayersCreated,
		result.MatchesInserted, result.DuplicateMatches, result.MatchesSkipped)
}

func (c *console) processTournament() {
	tournament := c.pickTournament()
	if tournament == nil {
		return
	}

	result, err := c.module.RatingService.ProcessTournament(tournament.ID)
	if err != nil {
		fmt.Printf("Processing failed: %v\n", err)
		return
	}

	fmt.Printf("ELO rankings updated: %d matches processed, %d skipped\n",
		result.MatchesProcessed, result.MatchesSkipped)
}

func (c *console) displayRankings() {
	rankings, err := c.module.PlayerService.GetRankings()
	if err != nil {
		fmt.Printf("Error fetching rankings: %v\n", err)
		return
	}

	fmt.Println("\nPlayer Rankings:")
	for _, entry := range rankings {
		fmt.Printf("%d. %s - %d\n", entry.Rank, entry.Name, entry.Rating)
	}
}

// addAlias tries automatic alias resolution first and falls back to a
// manually entered player id when no stored alias is close enough.
func (c *console) addAlias() {
	aliasName := c.prompt("Alias name: ")

	playerID, err := c.resolver.ResolveAlias(aliasName)
	if err == nil {
		fmt.Printf("Alias %q matched existing player ID %d\n", aliasName, playerID)
		return
	}

	switch {
	case errors.Is(err, identity.ErrBlankName):
		fmt.Println("Alias name cannot be blank.")
		return
	case errors.Is(err, identity.ErrNoAliasMatch):
		fmt.Printf("No matching alias found for %q.\n", aliasName)
	default:
		fmt.Printf("Alias resolution failed: %v\n", err)
		return
	}

	input := c.prompt("Enter a player ID to assign the alias to (blank to cancel): ")
	if input == "" {
		return
	}
	manualID, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		fmt.Println("Invalid player ID.")
		return
	}

	if err := c.resolver.AssignAlias(aliasName, uint(manualID)); err != nil {
		if errors.Is(err, identity.ErrUnknownPlayer) {
			fmt.Printf("No player found with ID %d. Cannot add alias.\n", manualID)
			return
		}
		fmt.Printf("Failed to add alias: %v\n", err)
		return
	}
	fmt.Printf("Added alias %q for player ID %d\n", aliasName, manualID)
}
