package handler

import jsoniter "github.com/json-iterator/go"

// json-iterator com comportamento compatível com a biblioteca padrão
var json = jsoniter.ConfigCompatibleWithStandardLibrary
