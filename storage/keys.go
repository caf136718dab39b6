package storage

const gameKeyPrefix = "rummikub:game:"

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}
