package object

import "fmt"

// Scoreboard counts goals for each side.
type Scoreboard struct {
	Player int
	Enemy  int
}

// Credit records a ball entering the goal owned by goalOwner. The point goes
// to the opponent of the goal's owner.
func (s *Scoreboard) Credit(goalOwner Side) Side {
	scorer := goalOwner.Opponent()
	if scorer == SidePlayer {
		s.Player++
	} else {
		s.Enemy++
	}
	return scorer
}

// Texts returns the two score labels: "Player: N" at the top-left and
// "Enemy: N" at the top-right of a render area width columns wide.
func (s *Scoreboard) Texts(ctx DrawContext, width int) (player, enemy Text) {
	playerValue := fmt.Sprintf("Player: %d", s.Player)
	enemyValue := fmt.Sprintf("Enemy: %d", s.Enemy)

	player = Text{X: 2, Y: 1, Value: playerValue, Style: &ctx.Styles.Player}
	enemy = Text{X: width - len(enemyValue), Y: 1, Value: enemyValue, Style: &ctx.Styles.Enemy}
	return player, enemy
}

// Draw writes both score labels on the first row of the render area.
func (s *Scoreboard) Draw(ctx DrawContext) error {
	width := 0
	if ctx.Canvas != nil {
		width = ctx.Canvas.TerminalWidth()
	}
	player, enemy := s.Texts(ctx, width)
	if err := player.Draw(ctx); err != nil {
		return err
	}
	return enemy.Draw(ctx)
}
