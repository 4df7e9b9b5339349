package txmanager

import "errors"

// ErrUpgradeNotAllowed возвращается при попытке открыть эксклюзивную секцию внутри read-only секции
var ErrUpgradeNotAllowed = errors.New("txmanager: cannot upgrade read-only section to exclusive")
