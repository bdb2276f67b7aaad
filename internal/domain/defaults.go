package domain

// DefaultPhones seeds the store on first run or when the persisted
// phones record is unreadable.
func DefaultPhones() []Phone {
	return []Phone{
		{ID: 1, Model: "Cisco 7841", MAC: "00:1A:2B:3C:4D:5E", IP: "192.168.1.101", Status: StatusAssigned, User: "Иванов И.И.", Department: "IT", Notes: "Основной телефон"},
		{ID: 2, Model: "Yealink T46S", MAC: "00:1A:2B:3C:4D:5F", IP: "192.168.1.102", Status: StatusFree},
		{ID: 3, Model: "Polycom VVX 450", MAC: "00:1A:2B:3C:4D:60", IP: "192.168.1.103", Status: StatusAssigned, User: "Петров П.П.", Department: "Продажи", Notes: "Конференц-зал"},
		{ID: 4, Model: "Cisco 8841", MAC: "00:1A:2B:3C:4D:61", IP: "192.168.1.104", Status: StatusBroken, Notes: "Не работает дисплей"},
		{ID: 5, Model: "Yealink T42S", MAC: "00:1A:2B:3C:4D:62", IP: "192.168.1.105", Status: StatusFree},
		{ID: 6, Model: "Cisco 7821", MAC: "00:1A:2B:3C:4D:63", IP: "192.168.1.106", Status: StatusAssigned, User: "Сидоров С.С.", Department: "Бухгалтерия"},
		{ID: 7, Model: "Polycom VVX 250", MAC: "00:1A:2B:3C:4D:64", IP: "192.168.1.107", Status: StatusFree},
		{ID: 8, Model: "Yealink T48S", MAC: "00:1A:2B:3C:4D:65", IP: "192.168.1.108", Status: StatusAssigned, User: "Козлов К.К.", Department: "Маркетинг", Notes: "Руководитель отдела"},
	}
}

// DefaultColumns is the canonical column registry. The identifier set is
// fixed; only visibility and order change at runtime.
func DefaultColumns() []Column {
	return []Column{
		{ID: "model", Label: "Модель", Visible: true},
		{ID: "mac", Label: "MAC адрес", Visible: true},
		{ID: "ip", Label: "IP адрес", Visible: true},
		{ID: "status", Label: "Статус", Visible: true},
		{ID: "user", Label: "Пользователь", Visible: true},
		{ID: "department", Label: "Отдел", Visible: true},
		{ID: "notes", Label: "Примечания", Visible: false},
	}
}

// DefaultTheme is used when no theme has been persisted.
const DefaultTheme = "dark"
