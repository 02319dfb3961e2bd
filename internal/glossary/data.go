package glossary

var entries = []Entry{
	{
		ID:          "rule-1",
		Category:    CategoryRules,
		Title:       "Передвижение и Ходы",
		Description: "Игроки по очереди бросают кубик d6. Выпавшая цифра соответствует количеству клеток, на которое продвигается персонаж. Если выпадает 6 — игрок делает дополнительный ход. Порядок ходов определяется списком лидеров в начале дня.",
	},
	{
		ID:          "rule-2",
		Category:    CategoryRules,
		Title:       "Дуэли (PVP)",
		Description: "Если игрок заканчивает ход на клетке, где уже стоит другой участник, начинается дуэль. Проигравший дуэль отбрасывается на 3 клетки назад или получает эффект оглушения (зависит от текущей фазы игры). Победитель остается на клетке.",
	},
	{
		ID:          "rule-3",
		Category:    CategoryRules,
		Title:       "Условия Победы",
		Description: "Побеждает тот, кто первым доберется до 100-й клетки. Для финиша необходимо выбросить точное значение на кубике. Если выпадает больше — игрок отскакивает назад на лишнее количество очков.",
	},
	{
		ID:          "rule-4",
		Category:    CategoryRules,
		Title:       "Механика Смерти",
		Description: "Если здоровье игрока падает до 0, он считается \"Погибшим\". Он теряет все предметы и возвращается на ближайший чекпоинт (Клетки 1, 25, 50, 75). Возрождение занимает 1 ход.",
	},

	// Wheel: items
	{
		ID:          "shield",
		Category:    CategoryWheel,
		Subcategory: SubcategoryItems,
		Title:       "Щит",
		Description: "Отражает направленный урон и ловушки в случайного участника. Работает только на предметы, которые использовали против тебя. Одноразовый.",
	},
	{
		ID:          "item-2",
		Category:    CategoryWheel,
		Subcategory: SubcategoryItems,
		Title:       "Ледоруб",
		Description: "Позволяет один раз проигнорировать механику \"Спуск\" (Змея/Трещина) и остаться на верхней клетке при попадании на неё.",
	},
	{
		ID:          "item-3",
		Category:    CategoryWheel,
		Subcategory: SubcategoryItems,
		Title:       "Зелье Скорости",
		Description: "Добавляет +2 к следующему броску кубика. Применяется автоматически перед следующим ходом игрока.",
	},
	{
		ID:          "item-4",
		Category:    CategoryWheel,
		Subcategory: SubcategoryItems,
		Title:       "Ржавый Ключ",
		Description: "Может открыть один сундук обычного или редкого качества, встречающийся на карте в специальных секторах.",
	},
	{
		ID:          "item-5",
		Category:    CategoryWheel,
		Subcategory: SubcategoryItems,
		Title:       "Золотая Монета",
		Description: "Универсальная валюта. Можно обменять у Торговца на случайный предмет или откупиться от некоторых негативных событий.",
	},

	// Wheel: events
	{
		ID:          "evt-1",
		Category:    CategoryWheel,
		Subcategory: SubcategoryEvents,
		Title:       "Северное Сияние",
		Description: "Положительное событие. Все игроки восстанавливают 20 здоровья и получают эффект \"Вдохновение\" (следующий бросок не может быть 1).",
	},
	{
		ID:          "evt-2",
		Category:    CategoryWheel,
		Subcategory: SubcategoryEvents,
		Title:       "Swap (Обмен)",
		Description: "Игрок меняется позициями с ближайшим соперником. Если соперников рядом нет, обмен происходит со случайным игроком из топ-3.",
	},
	{
		ID:          "evt-3",
		Category:    CategoryWheel,
		Subcategory: SubcategoryEvents,
		Title:       "Двойной бросок",
		Description: "В следующий ход все значения на кубике для этого игрока удваиваются (1->2, 6->12).",
	},
	{
		ID:          "evt-4",
		Category:    CategoryWheel,
		Subcategory: SubcategoryEvents,
		Title:       "Ускорение",
		Description: "Дальность перемещения увеличена на 1 клетку в течение 3-х ходов.",
	},

	// Wheel: traps
	{
		ID:          "trap-1",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Буран (Событие)",
		Description: "Глобальная ловушка. Все игроки на открытых участках карты получают 10 урона холодом и замедляются на 1 ход.",
	},
	{
		ID:          "trap-2",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Сход Лавины",
		Description: "Сектор карты перекрывается. Игроки в зоне лавины отбрасываются на ближайшую безопасную точку ниже по карте и теряют 15 HP.",
	},
	{
		ID:          "trap-3",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Гига-Реролл",
		Description: "Жестокая ловушка. Игрок обязан перепройти игру, которую он сейчас стримит (Reroll текущего задания). Прогресс по клеткам сохраняется.",
	},
	{
		ID:          "trap-4",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Тюрьма",
		Description: "Игрок попадает в ледяную тюрьму. Пропуск 2-х ходов или необходимость выбросить 6 на кубике для досрочного выхода.",
	},
	{
		ID:          "trap-5",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Кража",
		Description: "Случайный предмет из инвентаря уничтожается или передается отстающему игроку.",
	},
	{
		ID:          "trap-6",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Обморожение (Stun)",
		Description: "Персонаж замерз. Он пропускает свой следующий ход. Эффект снимается после пропуска.",
	},
	{
		ID:          "trap-7",
		Category:    CategoryWheel,
		Subcategory: SubcategoryTraps,
		Title:       "Яд (Poison)",
		Description: "Игрок теряет 5% здоровья каждый ход. Эффект действует 3 хода или пока не будет исцелен.",
	},
}
