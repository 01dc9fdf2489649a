package main

import "github.com/ChanHengLucas/PotentialPokemonBattleAI/cmd"

func main() {
	cmd.Execute()
}
