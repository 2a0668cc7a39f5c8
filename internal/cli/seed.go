package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/holonet/internal/store"
	"github.com/mesh-intelligence/holonet/pkg/types"
)

const defaultSeedEmail = "admin@holonet.local"

type seedFlags struct {
	email    string
	password string
	samples  bool
}

func newSeedCmd(a *app) *cobra.Command {
	var f seedFlags
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default user and optional sample data",
		Long: "Create the user that requests act on by default. Running seed again is a no-op.\n" +
			"Without --password a random password is generated and printed once.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSeed(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.email, "email", defaultSeedEmail, "email of the default user")
	cmd.Flags().StringVar(&f.password, "password", "", "password of the default user (default: generated)")
	cmd.Flags().BoolVar(&f.samples, "samples", false, "insert sample people and planets into empty tables")
	return cmd
}

func (a *app) runSeed(cmd *cobra.Command, f seedFlags) error {
	if f.email == "" {
		return types.ErrInvalidEmail
	}
	password := f.password
	generated := password == ""
	if generated {
		password = uuid.NewString()
	}

	u := &types.User{Email: f.email, IsActive: true}
	if err := u.SetPassword(password); err != nil {
		return err
	}

	b, err := a.openStore()
	if err != nil {
		return err
	}
	defer b.Detach()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	id, created, err := store.EnsureUser(ctx, b.Users(), u)
	if err != nil {
		return sysError("seed user: %w", err)
	}
	if created {
		fmt.Fprintf(out, "Created user %d <%s>\n", id, f.email)
		if generated {
			fmt.Fprintf(out, "Generated password: %s\n", password)
		}
	} else {
		fmt.Fprintf(out, "User %d <%s> already exists\n", id, f.email)
	}

	if f.samples {
		if err := seedSamples(ctx, b, out); err != nil {
			return sysError("seed samples: %w", err)
		}
	}
	return nil
}

func str(s string) *string { return &s }

func samplePeople() []*types.Person {
	return []*types.Person{
		{Name: "Luke Skywalker", HairColor: str("blond"), EyeColor: str("blue")},
		{Name: "Leia Organa", HairColor: str("brown"), EyeColor: str("brown")},
		{Name: "Han Solo", HairColor: str("brown"), EyeColor: str("brown")},
		{Name: "C-3PO", EyeColor: str("yellow")},
	}
}

func samplePlanets() []*types.Planet {
	return []*types.Planet{
		{Name: "Tatooine", Climate: str("arid"), Terrain: str("desert")},
		{Name: "Alderaan", Climate: str("temperate"), Terrain: str("grasslands, mountains")},
		{Name: "Hoth", Climate: str("frozen"), Terrain: str("tundra, ice caves")},
		{Name: "Dagobah", Climate: str("murky"), Terrain: str("swamp, jungles")},
	}
}

// seedSamples fills the people and planet tables when they are empty.
func seedSamples(ctx context.Context, s types.Store, out io.Writer) error {
	people, err := s.People().Fetch(ctx)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		for _, p := range samplePeople() {
			if _, err := s.People().Set(ctx, p); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "Added %d people\n", len(samplePeople()))
	}

	planets, err := s.Planets().Fetch(ctx)
	if err != nil {
		return err
	}
	if len(planets) == 0 {
		for _, p := range samplePlanets() {
			if _, err := s.Planets().Set(ctx, p); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "Added %d planets\n", len(samplePlanets()))
	}
	return nil
}
