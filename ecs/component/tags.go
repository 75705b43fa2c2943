package component

type SoulTag struct{}

var SoulTagComponent = NewComponent[SoulTag]()

type BattleTag struct{}

var BattleTagComponent = NewComponent[BattleTag]()
